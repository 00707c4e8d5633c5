package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionStatusToggled(t *testing.T) {
	tests := []struct {
		from ActionStatus
		want ActionStatus
	}{
		{StatusNotStarted, StatusCompleted},
		{StatusCompleted, StatusNotStarted},
		{"in progress", StatusCompleted},
		{"", StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.Toggled())
		})
	}
}

func TestActionToggleTwiceRestoresStatus(t *testing.T) {
	a := NewAction(1, "Send agenda", NewDate(2024, time.January, 12), "", nil)
	require.Equal(t, StatusNotStarted, a.Status)

	a.Toggle()
	assert.Equal(t, StatusCompleted, a.Status)
	a.Toggle()
	assert.Equal(t, StatusNotStarted, a.Status)
}

func TestNewActionTrimsContent(t *testing.T) {
	a := NewAction(3, "  Book room  ", NewDate(2024, time.March, 1), StatusCompleted, nil)

	assert.Equal(t, "Book room", a.Content)
	assert.Equal(t, StatusCompleted, a.Status)
	assert.Equal(t, uint(3), a.MeetingID)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", FormatDate(d))
	assert.Equal(t, NewDate(2024, time.January, 10), d)

	for _, bad := range []string{"", "2024-13-01", "2024-02-30", "10/01/2024", "2024-01-10T00:00:00Z"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
