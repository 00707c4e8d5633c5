package entities

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Meeting represents a meeting that owns follow-up actions
type Meeting struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	MeetingDate datatypes.Date `gorm:"not null;index" json:"meeting_date"`
	CreatedBy   *uint          `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Actions     []Action       `gorm:"foreignKey:MeetingID" json:"actions,omitempty"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting builds a meeting with a normalized title
func NewMeeting(title string, meetingDate datatypes.Date, createdBy *uint) *Meeting {
	return &Meeting{
		Title:       strings.TrimSpace(title),
		MeetingDate: meetingDate,
		CreatedBy:   createdBy,
	}
}
