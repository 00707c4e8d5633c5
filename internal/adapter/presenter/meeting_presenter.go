package presenter

import (
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	return &meeting.MeetingResponse{
		ID:          m.ID,
		Title:       m.Title,
		MeetingDate: entities.FormatDate(m.MeetingDate),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// ToMeetingListResponse converts meetings, keeping their order; never returns nil
func ToMeetingListResponse(meetings []*entities.Meeting) []*meeting.MeetingResponse {
	responses := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return responses
}
