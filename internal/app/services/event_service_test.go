package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

var eventNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

func TestResolveEventFilter(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		query    dto.EventQuery
		wantFrom *time.Time
		wantTo   *time.Time
		wantErr  bool
	}{
		{name: "no filters"},
		{
			name:     "month",
			query:    dto.EventQuery{Month: "2026-05"},
			wantFrom: ptrTime(day(1)),
			wantTo:   ptrTime(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "date-only to is inclusive",
			query:    dto.EventQuery{From: "2026-05-03", To: "2026-05-04"},
			wantFrom: ptrTime(day(3)),
			wantTo:   ptrTime(day(5)),
		},
		{
			name:     "timestamp to is exclusive",
			query:    dto.EventQuery{To: "2026-05-04T10:00:00Z"},
			wantTo:   ptrTime(time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:     "upcoming raises the lower bound",
			query:    dto.EventQuery{Month: "2026-05", Upcoming: true},
			wantFrom: ptrTime(eventNow),
			wantTo:   ptrTime(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "from narrows month",
			query:    dto.EventQuery{Month: "2026-05", From: "2026-05-20"},
			wantFrom: ptrTime(day(20)),
			wantTo:   ptrTime(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{name: "bad month", query: dto.EventQuery{Month: "2026-13"}, wantErr: true},
		{name: "bad date", query: dto.EventQuery{From: "yesterday"}, wantErr: true},
		{name: "empty range", query: dto.EventQuery{From: "2026-05-05", To: "2026-05-01"}, wantErr: true},
		{name: "upcoming past month", query: dto.EventQuery{Month: "2026-04", Upcoming: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ResolveEventFilter(tt.query, eventNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, filter.From)
			assert.Equal(t, tt.wantTo, filter.To)
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func intPtr(i int) *int { return &i }

type eventFixture struct {
	svc      EventService
	store    *memEventStore
	users    *memUserStore
	notifier *recordingNotifier
	now      time.Time
}

func newEventFixture() *eventFixture {
	f := &eventFixture{
		store:    newMemEventStore(),
		users:    newMemUserStore(),
		notifier: &recordingNotifier{},
		now:      eventNow,
	}
	f.svc = NewEventService(f.store, f.users, f.notifier, func() time.Time { return f.now }, zerolog.Nop())
	return f
}

func (f *eventFixture) create(t *testing.T, req dto.EventRequest) *dto.EventResponse {
	t.Helper()
	resp, err := f.svc.CreateEvent(context.Background(), uuid.New(), &req)
	require.NoError(t, err)
	return resp
}

func workshop(start time.Time, maxAttendees *int) dto.EventRequest {
	return dto.EventRequest{
		Title:        "Trauma-informed care",
		EventType:    "workshop",
		StartDate:    start,
		EndDate:      start.Add(2 * time.Hour),
		MaxAttendees: maxAttendees,
	}
}

func TestCreateEventValidatesSchedule(t *testing.T) {
	f := newEventFixture()
	req := workshop(eventNow.Add(48*time.Hour), nil)
	req.EndDate = req.StartDate.Add(-time.Hour)

	_, err := f.svc.CreateEvent(context.Background(), uuid.New(), &req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEventSchedule)
}

func TestRegisterLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	e := f.create(t, workshop(eventNow.Add(48*time.Hour), intPtr(1)))
	assert.True(t, e.RegistrationOpen)
	assert.Equal(t, 1, *e.SpotsLeft)

	first, second := uuid.New(), uuid.New()

	reg, err := f.svc.Register(ctx, first, e.ID)
	require.NoError(t, err)
	assert.Equal(t, first, reg.UserID)
	assert.Equal(t, []string{"event_registered"}, f.notifier.calls)

	_, err = f.svc.Register(ctx, first, e.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)

	_, err = f.svc.Register(ctx, second, e.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventFull)

	got, err := f.svc.GetEvent(ctx, first, e.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRegistered)
	assert.False(t, got.RegistrationOpen)
	assert.Equal(t, 0, *got.SpotsLeft)

	mine, err := f.svc.ListMyEvents(ctx, first)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	require.NoError(t, f.svc.CancelRegistration(ctx, first, e.ID))
	assert.Equal(t, "event_registration_cancelled", f.notifier.calls[1])
	assert.ErrorIs(t, f.svc.CancelRegistration(ctx, first, e.ID), apperrors.ErrNotRegistered)

	_, err = f.svc.Register(ctx, second, e.ID)
	require.NoError(t, err)
}

func TestRegisterAfterDeadline(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	req := workshop(eventNow.Add(48*time.Hour), nil)
	req.RegistrationDeadline = ptrTime(eventNow.Add(time.Hour))
	e := f.create(t, req)

	f.now = eventNow.Add(2 * time.Hour)
	_, err := f.svc.Register(ctx, uuid.New(), e.ID)
	assert.ErrorIs(t, err, apperrors.ErrRegistrationClosed)
	assert.Empty(t, f.notifier.calls)
}

func TestCancelAfterStart(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	e := f.create(t, workshop(eventNow.Add(time.Hour), nil))
	user := uuid.New()
	_, err := f.svc.Register(ctx, user, e.ID)
	require.NoError(t, err)

	f.now = eventNow.Add(90 * time.Minute)
	assert.ErrorIs(t, f.svc.CancelRegistration(ctx, user, e.ID), apperrors.ErrEventAlreadyStarted)
}

func TestUpdateEventRefusesCapBelowAttendees(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	e := f.create(t, workshop(eventNow.Add(48*time.Hour), intPtr(5)))
	for i := 0; i < 3; i++ {
		_, err := f.svc.Register(ctx, uuid.New(), e.ID)
		require.NoError(t, err)
	}

	_, err := f.svc.UpdateEvent(ctx, e.ID, ptrEventRequest(workshop(e.StartDate, intPtr(2))))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	updated, err := f.svc.UpdateEvent(ctx, e.ID, ptrEventRequest(workshop(e.StartDate, intPtr(3))))
	require.NoError(t, err)
	assert.Equal(t, 0, *updated.SpotsLeft)
}

func ptrEventRequest(r dto.EventRequest) *dto.EventRequest { return &r }

func TestListEventsMarksRegistrations(t *testing.T) {
	ctx := context.Background()
	f := newEventFixture()
	past := f.create(t, workshop(eventNow.Add(-72*time.Hour), nil))
	soon := f.create(t, workshop(eventNow.Add(24*time.Hour), nil))
	later := f.create(t, workshop(eventNow.Add(96*time.Hour), nil))
	user := uuid.New()
	_, err := f.svc.Register(ctx, user, later.ID)
	require.NoError(t, err)

	resp, err := f.svc.ListEvents(ctx, user, dto.EventQuery{Upcoming: true}, 1, 20)
	require.NoError(t, err)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, soon.ID, resp.Events[0].ID)
	assert.False(t, resp.Events[0].IsRegistered)
	assert.True(t, resp.Events[1].IsRegistered)
	for _, e := range resp.Events {
		assert.NotEqual(t, past.ID, e.ID)
	}
	assert.Equal(t, int64(2), resp.Pagination.TotalItems)
}

func TestEventNotFound(t *testing.T) {
	f := newEventFixture()
	_, err := f.svc.GetEvent(context.Background(), uuid.Nil, uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	_, err = f.svc.Register(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}
