package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/db"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/dberrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// querier is the read side shared by the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EventRepository handles events and registrations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *EventRepository) selectEvents() squirrel.SelectBuilder {
	return r.sb.Select("e.id", "e.title", "e.description", "e.event_type", "e.location", "e.is_virtual",
		"e.start_date", "e.end_date", "e.registration_deadline", "e.max_attendees", "e.created_by",
		"(SELECT COUNT(*) FROM event_registrations er WHERE er.event_id = e.id) AS attendee_count",
		"e.created_at", "e.updated_at").
		From("events e")
}

func scanEvent(row rowScanner) (*models.Event, error) {
	e := &models.Event{}
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.EventType, &e.Location, &e.IsVirtual,
		&e.StartDate, &e.EndDate, &e.RegistrationDeadline, &e.MaxAttendees, &e.CreatedBy,
		&e.AttendeeCount, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EventRepository) getEvent(ctx context.Context, q querier, id uuid.UUID) (*models.Event, error) {
	sql, args, err := r.selectEvents().Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	e, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	return e, nil
}

// Create inserts an event
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	sql, args, err := r.sb.Insert("events").
		Columns("title", "description", "event_type", "location", "is_virtual", "start_date", "end_date",
			"registration_deadline", "max_attendees", "created_by").
		Values(e.Title, e.Description, e.EventType, e.Location, e.IsVirtual, e.StartDate, e.EndDate,
			e.RegistrationDeadline, e.MaxAttendees, e.CreatedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if dberrors.IsCheckConstraintError(err, "events_dates_check") || dberrors.IsCheckConstraintError(err, "events_deadline_check") {
			return apperrors.ErrInvalidEventSchedule
		}
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetByID retrieves an event with its attendee count
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return r.getEvent(ctx, r.db, id)
}

// List returns one page of events ordered by start date
func (r *EventRepository) List(ctx context.Context, filter dto.EventFilter) ([]*models.Event, int64, error) {
	where := squirrel.And{}
	if filter.EventType != "" {
		where = append(where, squirrel.Eq{"e.event_type": filter.EventType})
	}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"e.start_date": *filter.From})
	}
	if filter.To != nil {
		where = append(where, squirrel.Lt{"e.start_date": *filter.To})
	}

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("events e").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count events query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.selectEvents().
		Where(where).
		OrderBy("e.start_date ASC", "e.id ASC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list events query: %w", err)
	}

	events, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListRegisteredFor returns the events a user holds a seat for, by start date
func (r *EventRepository) ListRegisteredFor(ctx context.Context, userID uuid.UUID) ([]*models.Event, error) {
	sql, args, err := r.selectEvents().
		Join("event_registrations reg ON reg.event_id = e.id").
		Where(squirrel.Eq{"reg.user_id": userID}).
		OrderBy("e.start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registered events query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *EventRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update replaces an event's editable fields
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	e.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("events").
		Set("title", e.Title).
		Set("description", e.Description).
		Set("event_type", e.EventType).
		Set("location", e.Location).
		Set("is_virtual", e.IsVirtual).
		Set("start_date", e.StartDate).
		Set("end_date", e.EndDate).
		Set("registration_deadline", e.RegistrationDeadline).
		Set("max_attendees", e.MaxAttendees).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsCheckConstraintError(err, "events_dates_check") || dberrors.IsCheckConstraintError(err, "events_deadline_check") {
			return apperrors.ErrInvalidEventSchedule
		}
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Delete removes an event and its registrations
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

// Register claims a seat for userID. The event row is locked for the whole
// transaction so concurrent registrations cannot exceed max_attendees.
func (r *EventRepository) Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*models.EventRegistration, error) {
	reg := &models.EventRegistration{EventID: eventID, UserID: userID}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var locked uuid.UUID
		if err := tx.QueryRow(ctx, `SELECT id FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrEventNotFound
			}
			return fmt.Errorf("error locking event: %w", err)
		}

		event, err := r.getEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}

		var registered bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM event_registrations WHERE event_id = $1 AND user_id = $2)`,
			eventID, userID).Scan(&registered)
		if err != nil {
			return fmt.Errorf("error checking registration: %w", err)
		}

		switch {
		case registered:
			return apperrors.ErrAlreadyRegistered
		case event.DeadlinePassed(now):
			return apperrors.ErrRegistrationClosed
		case event.IsFull():
			return apperrors.ErrEventFull
		}

		sql, args, err := r.sb.Insert("event_registrations").
			Columns("event_id", "user_id", "registered_at").
			Values(eventID, userID, now).
			Suffix("RETURNING id, registered_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build register query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&reg.ID, &reg.RegisteredAt); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "event_registrations_event_user_key") {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error creating registration: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrEventFull) && !errors.Is(err, apperrors.ErrRegistrationClosed) &&
			!errors.Is(err, apperrors.ErrAlreadyRegistered) && !errors.Is(err, apperrors.ErrEventNotFound) {
			logger.Error().Err(err).Str("eventID", eventID.String()).Msg("Error registering for event")
		}
		return nil, err
	}
	return reg, nil
}

// CancelRegistration releases userID's seat. Seats can only be released before
// the event starts.
func (r *EventRepository) CancelRegistration(ctx context.Context, eventID, userID uuid.UUID, now time.Time) error {
	event, err := r.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !now.Before(event.StartDate) {
		return apperrors.ErrEventAlreadyStarted
	}

	sql, args, err := r.sb.Delete("event_registrations").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cancel registration query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error cancelling registration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}
	return nil
}

// RegisteredEventIDs reports which of eventIDs userID is registered for
func (r *EventRepository) RegisteredEventIDs(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	registered := make(map[uuid.UUID]bool, len(eventIDs))
	if len(eventIDs) == 0 {
		return registered, nil
	}

	sql, args, err := r.sb.Select("event_id").
		From("event_registrations").
		Where(squirrel.Eq{"user_id": userID, "event_id": eventIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registered ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("error scanning registrations: %w", err)
	}
	for _, id := range ids {
		registered[id] = true
	}
	return registered, nil
}

// ListRegistrations returns an event's registrations in sign-up order
func (r *EventRepository) ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*models.EventRegistration, error) {
	sql, args, err := r.sb.Select("id", "event_id", "user_id", "registered_at").
		From("event_registrations").
		Where(squirrel.Eq{"event_id": eventID}).
		OrderBy("registered_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list registrations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.EventRegistration, error) {
		reg := &models.EventRegistration{}
		err := row.Scan(&reg.ID, &reg.EventID, &reg.UserID, &reg.RegisteredAt)
		return reg, err
	})
}
