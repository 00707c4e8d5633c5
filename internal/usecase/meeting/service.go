package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// CreateMeeting validates and persists a new meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// ListMeetings returns all meetings, most recent meeting date first
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)

	// GetMeeting retrieves a meeting by ID
	GetMeeting(ctx context.Context, id uint) (*entities.Meeting, error)

	// DeleteMeeting removes a meeting together with all of its actions
	DeleteMeeting(ctx context.Context, id uint) error
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)
