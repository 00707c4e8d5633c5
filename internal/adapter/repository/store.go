package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
)

// store implements repositories.Store on top of a gorm handle
type store struct {
	db       *gorm.DB
	meetings repositories.MeetingRepository
	actions  repositories.ActionRepository
}

// NewStore creates a store whose repositories share db
func NewStore(db *gorm.DB) repositories.Store {
	return &store{
		db:       db,
		meetings: NewMeetingRepository(db),
		actions:  NewActionRepository(db),
	}
}

func (s *store) Meetings() repositories.MeetingRepository {
	return s.meetings
}

func (s *store) Actions() repositories.ActionRepository {
	return s.actions
}

// Transaction runs fn inside a database transaction bound to ctx
func (s *store) Transaction(ctx context.Context, fn func(tx repositories.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
