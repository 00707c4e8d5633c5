package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts a new meeting and fills in its ID and CreatedAt
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// Exists reports whether a meeting with the ID is present
	Exists(ctx context.Context, id uint) (bool, error)

	// LockForDelete takes a row lock on the meeting for the rest of the
	// transaction and reports whether it exists. Inserts referencing the
	// meeting wait until the transaction ends.
	LockForDelete(ctx context.Context, id uint) (bool, error)

	// List retrieves all meetings, most recent meeting date first
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Delete removes a meeting row and returns the number of rows removed
	Delete(ctx context.Context, id uint) (int64, error)
}
