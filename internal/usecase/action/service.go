package action

import (
	"context"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// Service defines the interface for the action use case
type Service interface {
	// CreateAction validates and persists an action for an existing meeting
	CreateAction(ctx context.Context, input CreateActionInput) (*entities.Action, error)

	// ListActionsByMeeting returns a meeting's actions by due date; the meeting must exist
	ListActionsByMeeting(ctx context.Context, meetingID uint) ([]*entities.Action, error)

	// ListActions returns all actions, optionally for one meeting, without checking the meeting exists
	ListActions(ctx context.Context, filter ListActionsFilter) ([]*entities.Action, error)

	// GetAction retrieves an action by ID
	GetAction(ctx context.Context, id uint) (*entities.Action, error)

	// UpdateAction applies the supplied fields only
	UpdateAction(ctx context.Context, id uint, input UpdateActionInput) (*entities.Action, error)

	// ToggleActionStatus flips between not started and completed
	ToggleActionStatus(ctx context.Context, id uint) (*entities.Action, error)

	// CompleteAction marks an action completed
	CompleteAction(ctx context.Context, id uint) (*entities.Action, error)

	// DeleteAction removes a single action
	DeleteAction(ctx context.Context, id uint) error
}

// Ensure ActionService implements Service interface
var _ Service = (*ActionService)(nil)
