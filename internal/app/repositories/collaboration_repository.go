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
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/dberrors"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// CollaborationDirection selects which side of a request the caller is on.
type CollaborationDirection int

const (
	DirectionIncoming CollaborationDirection = iota
	DirectionOutgoing
	DirectionEither
)

// CollaborationRepository handles the collaboration graph
type CollaborationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCollaborationRepository creates a new CollaborationRepository
func NewCollaborationRepository(db *pgxpool.Pool) *CollaborationRepository {
	return &CollaborationRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *CollaborationRepository) selectWithParties() squirrel.SelectBuilder {
	columns := []string{
		"c.id", "c.requester_id", "c.recipient_id", "c.status", "c.message",
		"c.responded_at", "c.created_at", "c.updated_at",
	}
	columns = append(columns, authorColumns("rq")...)
	columns = append(columns, authorColumns("rc")...)

	return r.sb.Select(columns...).
		From("collaborations c").
		Join("profiles rq ON rq.id = c.requester_id").
		Join("profiles rc ON rc.id = c.recipient_id")
}

func scanCollaboration(row rowScanner) (*models.Collaboration, error) {
	c := &models.Collaboration{
		Requester: &models.ProfileSummary{},
		Recipient: &models.ProfileSummary{},
	}
	err := row.Scan(&c.ID, &c.RequesterID, &c.RecipientID, &c.Status, &c.Message,
		&c.RespondedAt, &c.CreatedAt, &c.UpdatedAt,
		&c.Requester.ID, &c.Requester.Name, &c.Requester.ProfileType, &c.Requester.AvatarURL,
		&c.Recipient.ID, &c.Recipient.Name, &c.Recipient.ProfileType, &c.Recipient.AvatarURL)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a pending request
func (r *CollaborationRepository) Create(ctx context.Context, c *models.Collaboration) error {
	c.Status = models.CollaborationPending

	sql, args, err := r.sb.Insert("collaborations").
		Columns("requester_id", "recipient_id", "status", "message").
		Values(c.RequesterID, c.RecipientID, string(c.Status), c.Message).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create collaboration query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "collaborations_pending_pair_idx"):
			return apperrors.ErrDuplicateRequest
		case dberrors.IsCheckConstraintError(err, "collaborations_not_self"):
			return apperrors.ErrSelfCollaboration
		case dberrors.IsForeignKeyError(err):
			return apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("requesterID", c.RequesterID.String()).Msg("Error creating collaboration")
		return fmt.Errorf("error creating collaboration: %w", err)
	}
	return nil
}

// GetByID retrieves a collaboration with both parties
func (r *CollaborationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Collaboration, error) {
	sql, args, err := r.selectWithParties().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get collaboration query: %w", err)
	}

	c, err := scanCollaboration(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCollaborationNotFound
		}
		return nil, fmt.Errorf("error retrieving collaboration: %w", err)
	}
	return c, nil
}

// ListBetween returns every row linking a and b in either direction, newest first
func (r *CollaborationRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*models.Collaboration, error) {
	sql, args, err := r.selectWithParties().
		Where(squirrel.Or{
			squirrel.Eq{"c.requester_id": a, "c.recipient_id": b},
			squirrel.Eq{"c.requester_id": b, "c.recipient_id": a},
		}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build collaborations between query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// ListForProfile lists the rows of one status where profileID sits on the given side
func (r *CollaborationRepository) ListForProfile(ctx context.Context, profileID uuid.UUID, status models.CollaborationStatus, direction CollaborationDirection) ([]*models.Collaboration, error) {
	var side squirrel.Sqlizer
	switch direction {
	case DirectionIncoming:
		side = squirrel.Eq{"c.recipient_id": profileID}
	case DirectionOutgoing:
		side = squirrel.Eq{"c.requester_id": profileID}
	default:
		side = squirrel.Or{squirrel.Eq{"c.recipient_id": profileID}, squirrel.Eq{"c.requester_id": profileID}}
	}

	sql, args, err := r.selectWithParties().
		Where(side).
		Where(squirrel.Eq{"c.status": string(status)}).
		OrderBy("c.updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list collaborations query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *CollaborationRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Collaboration, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing collaborations: %w", err)
	}
	defer rows.Close()

	out := []*models.Collaboration{}
	for rows.Next() {
		c, err := scanCollaboration(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning collaboration: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Resolve moves a pending request to status. Rows that are no longer pending
// are left untouched and reported as already resolved.
func (r *CollaborationRepository) Resolve(ctx context.Context, id uuid.UUID, status models.CollaborationStatus) error {
	now := time.Now()
	sql, args, err := r.sb.Update("collaborations").
		Set("status", string(status)).
		Set("responded_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": string(models.CollaborationPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build resolve collaboration query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error resolving collaboration: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrAlreadyResolved
	}
	return nil
}
