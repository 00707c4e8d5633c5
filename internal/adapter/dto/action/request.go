package action

import "github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/common"

// CreateActionRequest represents the request to create an action.
// The form variant on the meeting page takes meeting_id from the path.
// MeetingID must be present; an unknown id, 0 included, is left to the
// service to report as a missing reference.
type CreateActionRequest struct {
	MeetingID *uint   `json:"meeting_id" form:"-" validate:"required" example:"1"`
	Content   string  `json:"content" form:"content" validate:"required" example:"Send agenda"`
	DueDate   string  `json:"due_date" form:"due_date" validate:"required,date" example:"2024-01-12"`
	Status    *string `json:"status,omitempty" form:"-" example:"not started"`
	UserID    *uint   `json:"user_id,omitempty" form:"-"`
}

// UpdateActionRequest represents a partial update. Absent keys are left
// untouched; null or empty values are rejected.
type UpdateActionRequest struct {
	Content common.Optional[string] `json:"content" swaggertype:"string" example:"Send final agenda"`
	DueDate common.Optional[string] `json:"due_date" swaggertype:"string" example:"2024-01-15"`
	Status  common.Optional[string] `json:"status" swaggertype:"string" example:"completed"`
}
