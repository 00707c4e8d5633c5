package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

func TestToMeetingResponse(t *testing.T) {
	created := time.Date(2024, time.January, 9, 17, 30, 0, 0, time.FixedZone("JST", 9*3600))
	m := &entities.Meeting{
		ID:          4,
		Title:       "Q1 Planning",
		MeetingDate: entities.NewDate(2024, time.January, 10),
		CreatedAt:   created,
	}

	body, err := json.Marshal(ToMeetingResponse(m))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 4,
		"title": "Q1 Planning",
		"meeting_date": "2024-01-10",
		"created_by": null,
		"created_at": "2024-01-09T08:30:00Z"
	}`, string(body))

	assert.Nil(t, ToMeetingResponse(nil))
}

func TestToActionListResponse(t *testing.T) {
	owner := uint(2)
	actions := []*entities.Action{
		entities.NewAction(1, "Send agenda", entities.NewDate(2024, time.January, 12), "", &owner),
		entities.NewAction(1, "Book room", entities.NewDate(2024, time.January, 11), entities.StatusCompleted, nil),
	}

	out := ToActionListResponse(actions)
	require.Len(t, out, 2)
	assert.Equal(t, "2024-01-12", out[0].DueDate)
	assert.Equal(t, "not started", out[0].Status)
	assert.Equal(t, &owner, out[0].UserID)
	assert.Equal(t, "completed", out[1].Status)

	empty, err := json.Marshal(ToActionListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
