package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/metrics"
	usecaseErrors "github.com/johnquangdev/meeting-action-tracker/internal/usecase/errors"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	store  repositories.Store
	logger *zap.Logger
}

// NewMeetingService creates a new meeting service
func NewMeetingService(store repositories.Store, logger *zap.Logger) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{
		store:  store,
		logger: logger,
	}
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	Title       string
	MeetingDate string // YYYY-MM-DD
	CreatedBy   *uint
}

// CreateMeeting creates a new meeting
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (meeting *entities.Meeting, err error) {
	defer s.observe("create", time.Now(), &err)

	// Validate input
	if strings.TrimSpace(input.Title) == "" {
		return nil, usecaseErrors.Invalid("title", entities.ErrEmptyTitle.Error())
	}
	meetingDate, parseErr := entities.ParseDate(input.MeetingDate)
	if parseErr != nil {
		return nil, usecaseErrors.Invalid("meeting_date", entities.ErrInvalidDate.Error())
	}

	meeting = entities.NewMeeting(input.Title, meetingDate, input.CreatedBy)
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		return tx.Meetings().Create(ctx, meeting)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.logger.Info("meeting.created",
		zap.Uint("meeting_id", meeting.ID),
		zap.String("meeting_date", entities.FormatDate(meeting.MeetingDate)),
	)
	return meeting, nil
}

// ListMeetings retrieves all meetings
func (s *MeetingService) ListMeetings(ctx context.Context) (meetings []*entities.Meeting, err error) {
	defer s.observe("list", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		var listErr error
		meetings, listErr = tx.Meetings().List(ctx)
		return listErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// GetMeeting retrieves a meeting by ID
func (s *MeetingService) GetMeeting(ctx context.Context, id uint) (meeting *entities.Meeting, err error) {
	defer s.observe("get", time.Now(), &err)

	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		var findErr error
		meeting, findErr = tx.Meetings().FindByID(ctx, id)
		return findErr
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecaseErrors.NotFound(usecaseErrors.ResourceMeeting, id)
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting deletes the meeting and its actions in one transaction.
// Readers see either both or neither.
func (s *MeetingService) DeleteMeeting(ctx context.Context, id uint) (err error) {
	defer s.observe("delete", time.Now(), &err)

	var removedActions int64
	err = s.store.Transaction(ctx, func(tx repositories.Store) error {
		// Lock first so a concurrent CreateAction cannot add a row between
		// the two deletes.
		exists, err := tx.Meetings().LockForDelete(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return usecaseErrors.NotFound(usecaseErrors.ResourceMeeting, id)
		}

		removedActions, err = tx.Actions().DeleteByMeeting(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to delete actions: %w", err)
		}

		n, err := tx.Meetings().Delete(ctx, id)
		if err != nil {
			return err
		}
		if n == 0 {
			return usecaseErrors.NotFound(usecaseErrors.ResourceMeeting, id)
		}
		return nil
	})
	if err != nil {
		if usecaseErrors.IsDomain(err) {
			return err
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}

	metrics.RecordCascadeDelete(removedActions)
	s.logger.Info("meeting.deleted",
		zap.Uint("meeting_id", id),
		zap.Int64("actions_deleted", removedActions),
	)
	return nil
}

func (s *MeetingService) observe(operation string, started time.Time, err *error) {
	metrics.ObserveOperation(usecaseErrors.ResourceMeeting, operation, usecaseErrors.Outcome(*err), started)
}
