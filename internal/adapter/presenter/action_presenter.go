package presenter

import (
	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/action"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// ToActionResponse converts an Action entity to ActionResponse DTO
func ToActionResponse(a *entities.Action) *action.ActionResponse {
	if a == nil {
		return nil
	}

	return &action.ActionResponse{
		ID:        a.ID,
		MeetingID: a.MeetingID,
		UserID:    a.UserID,
		Content:   a.Content,
		DueDate:   entities.FormatDate(a.DueDate),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.UTC(),
	}
}

// ToActionListResponse converts actions, keeping their order; never returns nil
func ToActionListResponse(actions []*entities.Action) []*action.ActionResponse {
	responses := make([]*action.ActionResponse, len(actions))
	for i, a := range actions {
		responses[i] = ToActionResponse(a)
	}
	return responses
}
