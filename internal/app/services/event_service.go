package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/validation"
)

const dateLayout = "2006-01-02"

// EventService defines the interface for events and seat registration
type EventService interface {
	CreateEvent(ctx context.Context, createdBy uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, error)
	// viewerID may be uuid.Nil for anonymous readers.
	GetEvent(ctx context.Context, viewerID, id uuid.UUID) (*dto.EventResponse, error)
	ListEvents(ctx context.Context, viewerID uuid.UUID, query dto.EventQuery, page, pageSize int) (*dto.EventListResponse, error)
	ListMyEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, error)
	Register(ctx context.Context, userID, eventID uuid.UUID) (*models.EventRegistration, error)
	CancelRegistration(ctx context.Context, userID, eventID uuid.UUID) error
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*models.EventRegistration, error)
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo EventStore
	userRepo  UserStore
	notifier  Notifier
	now       Clock
	logger    zerolog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventStore, userRepo UserStore, notifier Notifier, now Clock, logger zerolog.Logger) EventService {
	if now == nil {
		now = time.Now
	}
	return &eventServiceImpl{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		now:       now,
		logger:    logger,
	}
}

// ResolveEventFilter turns the list query into a start-date window. month
// selects [first day, first day of next month); from and to accept dates or
// RFC 3339 timestamps, a bare to date is inclusive; upcoming moves the lower
// bound up to now.
func ResolveEventFilter(q dto.EventQuery, now time.Time) (dto.EventFilter, error) {
	filter := dto.EventFilter{EventType: strings.TrimSpace(q.Type)}

	if q.Month != "" {
		start, end, err := validation.ParseYearMonth(q.Month)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
		}
		filter.From, filter.To = &start, &end
	}

	if q.From != "" {
		from, _, err := parseDateParam(q.From)
		if err != nil {
			return filter, fmt.Errorf("%w: from %v", apperrors.ErrValidationFailed, err)
		}
		if filter.From == nil || from.After(*filter.From) {
			filter.From = &from
		}
	}

	if q.To != "" {
		to, dateOnly, err := parseDateParam(q.To)
		if err != nil {
			return filter, fmt.Errorf("%w: to %v", apperrors.ErrValidationFailed, err)
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1)
		}
		if filter.To == nil || to.Before(*filter.To) {
			filter.To = &to
		}
	}

	if q.Upcoming && (filter.From == nil || now.After(*filter.From)) {
		filter.From = &now
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return filter, fmt.Errorf("%w: the date range is empty", apperrors.ErrValidationFailed)
	}
	return filter, nil
}

func parseDateParam(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	if t, err = time.Parse(time.RFC3339, s); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("must be YYYY-MM-DD or an RFC 3339 timestamp")
}

func (s *eventServiceImpl) validateEvent(e *models.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	e.EventType = strings.TrimSpace(e.EventType)
	if e.Title == "" || e.EventType == "" {
		return fmt.Errorf("%w: title and eventType cannot be empty", apperrors.ErrValidationFailed)
	}
	if e.MaxAttendees != nil && *e.MaxAttendees < 1 {
		return fmt.Errorf("%w: maxAttendees must be at least 1", apperrors.ErrValidationFailed)
	}
	if !e.ValidSchedule() {
		return fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrInvalidEventSchedule)
	}
	return nil
}

// CreateEvent schedules an event. Callers are admins; the route enforces it.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, createdBy uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, error) {
	event := req.ToModel()
	event.Description = helpers.TrimmedOrNil(event.Description)
	event.Location = helpers.TrimmedOrNil(event.Location)
	if createdBy != uuid.Nil {
		event.CreatedBy = &createdBy
	}
	if err := s.validateEvent(event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	resp := dto.NewEventResponse(event, false, s.now())
	return &resp, nil
}

// UpdateEvent replaces the editable fields. Lowering the cap below the current
// attendee count is refused.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.EventRequest) (*dto.EventResponse, error) {
	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event := req.ToModel()
	event.ID = current.ID
	event.CreatedBy = current.CreatedBy
	event.CreatedAt = current.CreatedAt
	event.AttendeeCount = current.AttendeeCount
	event.Description = helpers.TrimmedOrNil(event.Description)
	event.Location = helpers.TrimmedOrNil(event.Location)
	if err := s.validateEvent(event); err != nil {
		return nil, err
	}
	if event.MaxAttendees != nil && *event.MaxAttendees < current.AttendeeCount {
		return nil, fmt.Errorf("%w: maxAttendees cannot be lower than the %d registered attendees",
			apperrors.ErrValidationFailed, current.AttendeeCount)
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	resp := dto.NewEventResponse(event, false, s.now())
	return &resp, nil
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, viewerID, id uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	registered := false
	if viewerID != uuid.Nil {
		ids, err := s.eventRepo.RegisteredEventIDs(ctx, viewerID, []uuid.UUID{id})
		if err != nil {
			return nil, err
		}
		registered = ids[id]
	}

	resp := dto.NewEventResponse(event, registered, s.now())
	return &resp, nil
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, viewerID uuid.UUID, query dto.EventQuery, page, pageSize int) (*dto.EventListResponse, error) {
	now := s.now()
	filter, err := ResolveEventFilter(query, now)
	if err != nil {
		return nil, err
	}
	filter.Page, filter.PageSize = page, pageSize

	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	registered := map[uuid.UUID]bool{}
	if viewerID != uuid.Nil && len(events) > 0 {
		ids := make([]uuid.UUID, len(events))
		for i, e := range events {
			ids[i] = e.ID
		}
		if registered, err = s.eventRepo.RegisteredEventIDs(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]dto.EventResponse, len(events))
	for i, e := range events {
		out[i] = dto.NewEventResponse(e, registered[e.ID], now)
	}
	return &dto.EventListResponse{
		Events:     out,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// ListMyEvents returns the events the caller holds a seat for
func (s *eventServiceImpl) ListMyEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.ListRegisteredFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]dto.EventResponse, len(events))
	for i, e := range events {
		out[i] = dto.NewEventResponse(e, true, now)
	}
	return out, nil
}

// Register claims a seat. Deadline and capacity are checked by the store
// inside the same transaction as the insert.
func (s *eventServiceImpl) Register(ctx context.Context, userID, eventID uuid.UUID) (*models.EventRegistration, error) {
	reg, err := s.eventRepo.Register(ctx, eventID, userID, s.now())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("eventID", eventID.String()).
		Str("userID", userID.String()).
		Msg("Registered for event")

	if s.notifier != nil {
		s.notifyRegistered(ctx, reg)
	}
	return reg, nil
}

func (s *eventServiceImpl) notifyRegistered(ctx context.Context, reg *models.EventRegistration) {
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		s.logger.Warn().Err(err).Str("eventID", reg.EventID.String()).Msg("Could not load event for notification")
		return
	}
	userEmail := ""
	if user, err := s.userRepo.GetByID(ctx, reg.UserID); err == nil {
		userEmail = user.Email
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		s.logger.Warn().Err(err).Str("userID", reg.UserID.String()).Msg("Could not load user for notification")
	}
	s.notifier.EventRegistered(ctx, event, reg, userEmail)
}

// CancelRegistration releases the caller's seat before the event starts
func (s *eventServiceImpl) CancelRegistration(ctx context.Context, userID, eventID uuid.UUID) error {
	if err := s.eventRepo.CancelRegistration(ctx, eventID, userID, s.now()); err != nil {
		return err
	}

	if s.notifier != nil {
		if event, err := s.eventRepo.GetByID(ctx, eventID); err == nil {
			s.notifier.EventRegistrationCancelled(ctx, event, userID)
		}
	}
	return nil
}

func (s *eventServiceImpl) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*models.EventRegistration, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	regs, err := s.eventRepo.ListRegistrations(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*models.EventRegistration{}
	}
	return regs, nil
}
