package action

import "time"

// ActionResponse represents an action in API responses
type ActionResponse struct {
	ID        uint      `json:"id" example:"1"`
	MeetingID uint      `json:"meeting_id" example:"1"`
	UserID    *uint     `json:"user_id"`
	Content   string    `json:"content" example:"Send agenda"`
	DueDate   string    `json:"due_date" example:"2024-01-12"`
	Status    string    `json:"status" example:"not started"`
	CreatedAt time.Time `json:"created_at"`
}
