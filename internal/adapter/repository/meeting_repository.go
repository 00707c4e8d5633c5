package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Omit("Actions").Create(meeting).Error
}

// FindByID retrieves a meeting by its ID
func (r *meetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Exists reports whether the meeting is present
func (r *meetingRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// LockForDelete selects the meeting FOR UPDATE. sqlite has no row locks;
// its single writer already serializes the delete.
func (r *meetingRepository) LockForDelete(ctx context.Context, id uint) (bool, error) {
	db := r.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ids []uint
	err := db.Model(&entities.Meeting{}).
		Where("id = ?", id).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

// List retrieves all meetings ordered by meeting date, newest first.
// Meetings on the same date keep insertion order.
func (r *meetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Order("meeting_date DESC").
		Order("id ASC").
		Find(&meetings).Error
	return meetings, err
}

// Delete removes the meeting row only; callers delete its actions first
func (r *meetingRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Meeting{}, id)
	return result.RowsAffected, result.Error
}
