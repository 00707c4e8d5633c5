package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title       string `json:"title" form:"title" validate:"required,max=255" example:"Q1 Planning"`
	MeetingDate string `json:"meeting_date" form:"meeting_date" validate:"required,date" example:"2024-01-10"`
	CreatedBy   *uint  `json:"created_by,omitempty" form:"created_by"`
}
