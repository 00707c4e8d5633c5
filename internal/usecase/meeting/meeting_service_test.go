package meeting_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/repository"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-action-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-action-tracker/internal/infrastructure/database/databasetest"
	"github.com/johnquangdev/meeting-action-tracker/internal/usecase/action"
	usecaseErrors "github.com/johnquangdev/meeting-action-tracker/internal/usecase/errors"
	"github.com/johnquangdev/meeting-action-tracker/internal/usecase/meeting"
)

func newService(t *testing.T) (*meeting.MeetingService, repositories.Store) {
	t.Helper()
	store := repository.NewStore(databasetest.New(t))
	return meeting.NewMeetingService(store, nil), store
}

func TestCreateMeeting(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	creator := uint(7)
	m, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{
		Title:       "  Q1 Planning ",
		MeetingDate: "2024-01-10",
		CreatedBy:   &creator,
	})
	require.NoError(t, err)

	assert.NotZero(t, m.ID)
	assert.Equal(t, "Q1 Planning", m.Title)
	assert.Equal(t, "2024-01-10", entities.FormatDate(m.MeetingDate))
	require.NotNil(t, m.CreatedBy)
	assert.Equal(t, uint(7), *m.CreatedBy)
	assert.False(t, m.CreatedAt.IsZero())

	got, err := svc.GetMeeting(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "Q1 Planning", got.Title)
	assert.Equal(t, "2024-01-10", entities.FormatDate(got.MeetingDate))
}

func TestCreateMeetingValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	tests := []struct {
		name  string
		input meeting.CreateMeetingInput
		field string
	}{
		{"empty title", meeting.CreateMeetingInput{Title: "", MeetingDate: "2024-01-10"}, "title"},
		{"blank title", meeting.CreateMeetingInput{Title: "   ", MeetingDate: "2024-01-10"}, "title"},
		{"missing date", meeting.CreateMeetingInput{Title: "Retro"}, "meeting_date"},
		{"bad date", meeting.CreateMeetingInput{Title: "Retro", MeetingDate: "2024-02-30"}, "meeting_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateMeeting(ctx, tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, usecaseErrors.ErrValidation))

			var vErr *usecaseErrors.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestListMeetingsOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	inputs := []meeting.CreateMeetingInput{
		{Title: "Kickoff", MeetingDate: "2024-01-03"},
		{Title: "Review", MeetingDate: "2024-02-14"},
		{Title: "Standup A", MeetingDate: "2024-01-10"},
		{Title: "Standup B", MeetingDate: "2024-01-10"},
	}
	ids := make(map[uint]bool)
	for _, in := range inputs {
		m, err := svc.CreateMeeting(ctx, in)
		require.NoError(t, err)
		assert.False(t, ids[m.ID], "ids must be unique")
		ids[m.ID] = true
	}

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)

	titles := make([]string, len(meetings))
	for i, m := range meetings {
		titles[i] = m.Title
	}
	assert.Equal(t, []string{"Review", "Standup A", "Standup B", "Kickoff"}, titles)
}

func TestGetMeetingNotFound(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.GetMeeting(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotFound))
	assert.False(t, errors.Is(err, usecaseErrors.ErrIntegrity))
}

func TestDeleteMeetingCascades(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	m, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{Title: "Q1 Planning", MeetingDate: "2024-01-10"})
	require.NoError(t, err)
	other, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{Title: "Retro", MeetingDate: "2024-01-11"})
	require.NoError(t, err)

	for i, meetingID := range []uint{m.ID, m.ID, m.ID, other.ID} {
		a := entities.NewAction(meetingID, "task", entities.NewDate(2024, 1, 12+i), "", nil)
		require.NoError(t, store.Actions().Create(ctx, a))
	}

	require.NoError(t, svc.DeleteMeeting(ctx, m.ID))

	_, err = svc.GetMeeting(ctx, m.ID)
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotFound))

	left, err := store.Actions().List(ctx, repositories.ActionFilters{MeetingID: &m.ID})
	require.NoError(t, err)
	assert.Empty(t, left)

	kept, err := store.Actions().List(ctx, repositories.ActionFilters{MeetingID: &other.ID})
	require.NoError(t, err)
	assert.Len(t, kept, 1)

	err = svc.DeleteMeeting(ctx, m.ID)
	assert.True(t, errors.Is(err, usecaseErrors.ErrNotFound))
}

func TestDeleteMeetingWithoutActions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	m, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{Title: "Solo", MeetingDate: "2024-05-01"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeeting(ctx, m.ID))

	meetings, err := svc.ListMeetings(ctx)
	require.NoError(t, err)
	assert.Empty(t, meetings)
}

// On sqlite the test pool holds a single connection, so readers and the
// delete are fully serialized. This run checks that the cascade commits
// as one unit and that no reader errors out; the postgres variant below
// exercises real concurrency.
func TestDeleteMeetingConcurrentReaders(t *testing.T) {
	assertCascadeIsAtomic(t, repository.NewStore(databasetest.New(t)))
}

func TestDeleteMeetingConcurrentReadersPostgres(t *testing.T) {
	assertCascadeIsAtomic(t, repository.NewStore(databasetest.NewPostgres(t)))
}

func assertCascadeIsAtomic(t *testing.T, store repositories.Store) {
	t.Helper()
	ctx := context.Background()
	svc := meeting.NewMeetingService(store, nil)

	m, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{Title: "Big", MeetingDate: "2024-03-01"})
	require.NoError(t, err)

	const n = 20
	for i := 0; i < n; i++ {
		a := entities.NewAction(m.ID, "task", entities.NewDate(2024, 3, 2), "", nil)
		require.NoError(t, store.Actions().Create(ctx, a))
	}

	const readers = 4
	seen := make(chan int, readers*50)
	done := make(chan struct{})
	errs := make(chan error, readers)

	for r := 0; r < readers; r++ {
		go func() {
			for i := 0; i < 50; i++ {
				var count int
				err := store.Transaction(ctx, func(tx repositories.Store) error {
					actions, err := tx.Actions().List(ctx, repositories.ActionFilters{MeetingID: &m.ID})
					count = len(actions)
					return err
				})
				if err != nil {
					errs <- err
					return
				}
				seen <- count
			}
			errs <- nil
		}()
	}

	go func() {
		defer close(done)
		assert.NoError(t, svc.DeleteMeeting(ctx, m.ID))
	}()

	for r := 0; r < readers; r++ {
		require.NoError(t, <-errs)
	}
	<-done
	close(seen)

	for count := range seen {
		assert.Contains(t, []int{0, n}, count, "readers must never see a partial cascade")
	}
}

// Actions created while the meeting is being deleted either land before
// the lock and are removed with it, or fail as a missing reference.
func TestDeleteMeetingRacesCreateActionPostgres(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore(databasetest.NewPostgres(t))
	svc := meeting.NewMeetingService(store, nil)
	actions := action.NewActionService(store, nil)

	m, err := svc.CreateMeeting(ctx, meeting.CreateMeetingInput{Title: "Race", MeetingDate: "2024-03-01"})
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := actions.CreateAction(ctx, action.CreateActionInput{
				MeetingID: m.ID,
				Content:   "late task",
				DueDate:   "2024-03-02",
			})
			if err != nil {
				assert.True(t, errors.Is(err, usecaseErrors.ErrIntegrity), "unexpected error: %v", err)
			}
		}()
	}

	require.NoError(t, svc.DeleteMeeting(ctx, m.ID))
	wg.Wait()

	left, err := store.Actions().List(ctx, repositories.ActionFilters{MeetingID: &m.ID})
	require.NoError(t, err)
	assert.Empty(t, left)
}
