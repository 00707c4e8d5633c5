package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// ActionRepository defines the interface for action data access
type ActionRepository interface {
	// Create inserts a new action
	Create(ctx context.Context, action *entities.Action) error

	// FindByID retrieves an action by its ID
	FindByID(ctx context.Context, id uint) (*entities.Action, error)

	// List retrieves actions matching the filters in insertion order
	List(ctx context.Context, filters ActionFilters) ([]*entities.Action, error)

	// ListByMeeting retrieves the actions of one meeting by due date
	ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Action, error)

	// Update persists content, due date and status of an existing action
	Update(ctx context.Context, action *entities.Action) error

	// Delete removes a single action and returns the number of rows removed
	Delete(ctx context.Context, id uint) (int64, error)

	// DeleteByMeeting removes every action of a meeting
	DeleteByMeeting(ctx context.Context, meetingID uint) (int64, error)
}

// ActionFilters represents filter options for listing actions
type ActionFilters struct {
	MeetingID *uint
}
