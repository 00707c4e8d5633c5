package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
)

// actionRepository implements the ActionRepository interface
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository creates a new action repository
func NewActionRepository(db *gorm.DB) repositories.ActionRepository {
	return &actionRepository{db: db}
}

// Create creates a new action
func (r *actionRepository) Create(ctx context.Context, action *entities.Action) error {
	err := r.db.WithContext(ctx).Omit("Meeting").Create(action).Error
	return translateError(err)
}

// FindByID retrieves an action by its ID
func (r *actionRepository) FindByID(ctx context.Context, id uint) (*entities.Action, error) {
	var action entities.Action
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&action).Error

	if err != nil {
		return nil, err
	}
	return &action, nil
}

// List retrieves actions with optional filters
func (r *actionRepository) List(ctx context.Context, filters repositories.ActionFilters) ([]*entities.Action, error) {
	var actions []*entities.Action

	query := r.db.WithContext(ctx).Model(&entities.Action{})
	if filters.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filters.MeetingID)
	}

	err := query.Order("id ASC").Find(&actions).Error
	return actions, err
}

// ListByMeeting retrieves the actions of a meeting, earliest due date first
func (r *actionRepository) ListByMeeting(ctx context.Context, meetingID uint) ([]*entities.Action, error) {
	var actions []*entities.Action
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("due_date ASC").
		Order("id ASC").
		Find(&actions).Error
	return actions, err
}

// Update writes the mutable columns of an action
func (r *actionRepository) Update(ctx context.Context, action *entities.Action) error {
	return r.db.WithContext(ctx).
		Model(&entities.Action{}).
		Where("id = ?", action.ID).
		Updates(map[string]interface{}{
			"content":  action.Content,
			"due_date": action.DueDate,
			"status":   action.Status,
		}).
		Error
}

// Delete removes a single action
func (r *actionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entities.Action{}, id)
	return result.RowsAffected, result.Error
}

// DeleteByMeeting removes all actions of a meeting
func (r *actionRepository) DeleteByMeeting(ctx context.Context, meetingID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Delete(&entities.Action{})
	return result.RowsAffected, result.Error
}
