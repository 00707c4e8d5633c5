package repositories

import (
	"context"
	"errors"
)

// Store is the unit of work handed to the use cases.
// Repositories obtained inside Transaction share one database transaction.
type Store interface {
	Meetings() MeetingRepository
	Actions() ActionRepository

	// Transaction runs fn in a transaction. It commits when fn returns nil
	// and rolls back on error or panic.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// ErrForeignKeyViolation is returned when an insert references a missing parent row
var ErrForeignKeyViolation = errors.New("foreign key violation")
