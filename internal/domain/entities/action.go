package entities

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// ActionStatus is the progress state of an action.
// Toggle only produces the two constants below; updates may store other values.
type ActionStatus string

const (
	StatusNotStarted ActionStatus = "not started"
	StatusCompleted  ActionStatus = "completed"
)

// IsCompleted reports whether the status counts as done
func (s ActionStatus) IsCompleted() bool {
	return s == StatusCompleted
}

// Toggled returns the opposite two-state value
func (s ActionStatus) Toggled() ActionStatus {
	if s.IsCompleted() {
		return StatusNotStarted
	}
	return StatusCompleted
}

// Action represents a follow-up task raised in a meeting
type Action struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingID uint           `gorm:"not null;index" json:"meeting_id"`
	Meeting   *Meeting       `gorm:"foreignKey:MeetingID" json:"-"`
	UserID    *uint          `gorm:"column:user_id" json:"user_id"`
	Content   string         `gorm:"not null" json:"content"`
	DueDate   datatypes.Date `gorm:"not null" json:"due_date"`
	Status    ActionStatus   `gorm:"not null;default:'not started'" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Action
func (Action) TableName() string {
	return "actions"
}

// NewAction builds an action; an empty status falls back to StatusNotStarted
func NewAction(meetingID uint, content string, dueDate datatypes.Date, status ActionStatus, userID *uint) *Action {
	if status == "" {
		status = StatusNotStarted
	}
	return &Action{
		MeetingID: meetingID,
		UserID:    userID,
		Content:   strings.TrimSpace(content),
		DueDate:   dueDate,
		Status:    status,
	}
}

// Toggle flips the status between not started and completed
func (a *Action) Toggle() {
	a.Status = a.Status.Toggled()
}

// Complete marks the action as completed
func (a *Action) Complete() {
	a.Status = StatusCompleted
}
