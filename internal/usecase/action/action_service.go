package action

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/meeting-action-tracker/internal/usecase/errors"
)

// ActionService handles action business logic
type ActionService struct {
	store  repositories.Store
	logger *zap.Logger
}

// NewActionService creates a new action service
func NewActionService(store repositories.Store, logger *zap.Logger) *ActionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActionService{
		store:  store,
		logger: logger,
	}
}

// CreateActionInput represents input for creating an action
type CreateActionInput struct {
	MeetingID uint
	Content   string
	DueDate   string  // YYYY-MM-DD
	Status    *string // nil means entities.StatusNotStarted
	UserID    *uint
}

// UpdateActionInput holds the fields to change; nil fields are left untouched
type UpdateActionInput struct {
	Content *string
	DueDate *string
	Status  *string
}

// ListActionsFilter narrows ListActions
type ListActionsFilter struct {
	MeetingID *uint
}

// CreateAction creates a new action
func (s *ActionService) CreateAction(ctx context.Context, input CreateActionInput) (action *entities.Action, err error) {
	defer s.observe("create", time.Now(), &err)

	content, err := parseContent(input.Content)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}
	status := entities.StatusNotStarted
	if input.Status != nil {
		if status, err = parseStatus(*input.Status); err != nil {
			return nil, err
		}
	}

	action = entities.NewAction(input.MeetingID, content, dueDate, status, input.UserID)
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Meetings().Exists(ctx, input.MeetingID)
		if err != nil {
			return err
		}
		if !exists {
			return usecaseErrors.MissingReference(usecaseErrors.ResourceMeeting, input.MeetingID)
		}

		if err := tx.Actions().Create(ctx, action); err != nil {
			if errors.Is(err, repositories.ErrForeignKeyViolation) {
				return usecaseErrors.MissingReference(usecaseErrors.ResourceMeeting, input.MeetingID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.wrap("create action", err)
	}

	s.logger.Info("action.created",
		zap.Uint("action_id", action.ID),
		zap.Uint("meeting_id", action.MeetingID),
	)
	return action, nil
}

// ListActionsByMeeting retrieves the actions of an existing meeting
func (s *ActionService) ListActionsByMeeting(ctx context.Context, meetingID uint) (actions []*entities.Action, err error) {
	defer s.observe("list_by_meeting", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		exists, err := tx.Meetings().Exists(ctx, meetingID)
		if err != nil {
			return err
		}
		if !exists {
			return usecaseErrors.NotFound(usecaseErrors.ResourceMeeting, meetingID)
		}

		actions, err = tx.Actions().ListByMeeting(ctx, meetingID)
		return err
	})
	if err != nil {
		return nil, s.wrap("list actions", err)
	}
	return actions, nil
}

// ListActions retrieves actions; an unknown meeting filter yields an empty list
func (s *ActionService) ListActions(ctx context.Context, filter ListActionsFilter) (actions []*entities.Action, err error) {
	defer s.observe("list", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		var listErr error
		actions, listErr = tx.Actions().List(ctx, repositories.ActionFilters{MeetingID: filter.MeetingID})
		return listErr
	})
	if err != nil {
		return nil, s.wrap("list actions", err)
	}
	return actions, nil
}

// GetAction retrieves an action by ID
func (s *ActionService) GetAction(ctx context.Context, id uint) (action *entities.Action, err error) {
	defer s.observe("get", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		var findErr error
		action, findErr = s.find(ctx, tx, id)
		return findErr
	})
	if err != nil {
		return nil, s.wrap("get action", err)
	}
	return action, nil
}

// UpdateAction applies a partial update
func (s *ActionService) UpdateAction(ctx context.Context, id uint, input UpdateActionInput) (action *entities.Action, err error) {
	defer s.observe("update", time.Now(), &err)

	// Validate supplied fields before touching the store
	var (
		content *string
		dueDate *datatypes.Date
		status  *entities.ActionStatus
	)
	if input.Content != nil {
		c, err := parseContent(*input.Content)
		if err != nil {
			return nil, err
		}
		content = &c
	}
	if input.DueDate != nil {
		d, err := parseDueDate(*input.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &d
	}
	if input.Status != nil {
		st, err := parseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		var findErr error
		action, findErr = s.find(ctx, tx, id)
		if findErr != nil {
			return findErr
		}

		if content != nil {
			action.Content = *content
		}
		if dueDate != nil {
			action.DueDate = *dueDate
		}
		if status != nil {
			action.Status = *status
		}
		return tx.Actions().Update(ctx, action)
	})
	if err != nil {
		return nil, s.wrap("update action", err)
	}

	s.logger.Info("action.updated", zap.Uint("action_id", id))
	return action, nil
}

// ToggleActionStatus flips the action status
func (s *ActionService) ToggleActionStatus(ctx context.Context, id uint) (action *entities.Action, err error) {
	defer s.observe("toggle", time.Now(), &err)

	action, err = s.mutate(ctx, id, (*entities.Action).Toggle)
	if err != nil {
		return nil, s.wrap("toggle action", err)
	}

	s.logger.Info("action.toggled",
		zap.Uint("action_id", id),
		zap.String("status", string(action.Status)),
	)
	return action, nil
}

// CompleteAction sets the action status to completed
func (s *ActionService) CompleteAction(ctx context.Context, id uint) (action *entities.Action, err error) {
	defer s.observe("complete", time.Now(), &err)

	action, err = s.mutate(ctx, id, (*entities.Action).Complete)
	if err != nil {
		return nil, s.wrap("complete action", err)
	}

	s.logger.Info("action.completed", zap.Uint("action_id", id))
	return action, nil
}

// DeleteAction deletes a single action
func (s *ActionService) DeleteAction(ctx context.Context, id uint) (err error) {
	defer s.observe("delete", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		n, err := tx.Actions().Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return usecaseErrors.NotFound(usecaseErrors.ResourceAction, id)
		}
		return nil
	})
	if err != nil {
		return s.wrap("delete action", err)
	}

	s.logger.Info("action.deleted", zap.Uint("action_id", id))
	return nil
}

// mutate loads, changes and saves an action inside one transaction
func (s *ActionService) mutate(ctx context.Context, id uint, change func(*entities.Action)) (*entities.Action, error) {
	var action *entities.Action
	err := s.store.Transaction(ctx, func(tx repositories.Store) error {
		var err error
		action, err = s.find(ctx, tx, id)
		if err != nil {
			return err
		}
		change(action)
		return tx.Actions().Update(ctx, action)
	})
	return action, err
}

func (s *ActionService) find(ctx context.Context, tx repositories.Store, id uint) (*entities.Action, error) {
	action, err := tx.Actions().FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, usecaseErrors.NotFound(usecaseErrors.ResourceAction, id)
	}
	return action, err
}

func (s *ActionService) wrap(operation string, err error) error {
	if usecaseErrors.IsDomain(err) {
		return err
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func (s *ActionService) observe(operation string, started time.Time, err *error) {
	metrics.ObserveOperation(usecaseErrors.ResourceAction, operation, usecaseErrors.Outcome(*err), started)
}

func parseContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", usecaseErrors.Invalid("content", entities.ErrEmptyContent.Error())
	}
	return content, nil
}

func parseDueDate(value string) (datatypes.Date, error) {
	d, err := entities.ParseDate(value)
	if err != nil {
		return datatypes.Date{}, usecaseErrors.Invalid("due_date", entities.ErrInvalidDate.Error())
	}
	return d, nil
}

func parseStatus(value string) (entities.ActionStatus, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", usecaseErrors.Invalid("status", entities.ErrEmptyStatus.Error())
	}
	return entities.ActionStatus(value), nil
}
