package meeting

import "time"

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID          uint      `json:"id" example:"1"`
	Title       string    `json:"title" example:"Q1 Planning"`
	MeetingDate string    `json:"meeting_date" example:"2024-01-10"`
	CreatedBy   *uint     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
