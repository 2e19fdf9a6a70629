package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/dberrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

var profileColumns = []string{
	"id", "user_id", "profile_type", "name", "email", "location", "bio",
	"avatar_url", "interests", "details", "created_at", "updated_at",
}

// ProfileRepository handles profile rows
type ProfileRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	p := &models.Profile{}
	var details []byte
	err := row.Scan(&p.ID, &p.UserID, &p.ProfileType, &p.Name, &p.Email, &p.Location, &p.Bio,
		&p.AvatarURL, &p.Interests, &details, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &p.Details); err != nil {
			return nil, fmt.Errorf("invalid profile details: %w", err)
		}
	}
	p.Interests = helpers.NonNil(p.Interests)
	return p, nil
}

func marshalDetails(d models.ProfileDetails) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile details: %w", err)
	}
	return string(b), nil
}

// Create inserts a profile. A second profile for the same user is rejected.
func (r *ProfileRepository) Create(ctx context.Context, p *models.Profile) error {
	details, err := marshalDetails(p.Details)
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Insert("profiles").
		Columns("user_id", "profile_type", "name", "email", "location", "bio", "avatar_url", "interests", "details").
		Values(p.UserID, string(p.ProfileType), p.Name, p.Email, p.Location, p.Bio, p.AvatarURL,
			helpers.NonNil(p.Interests), details).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create profile query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "profiles_user_id_key") {
			return apperrors.ErrProfileAlreadyExists
		}
		logger.Error().Err(err).Str("userID", p.UserID.String()).Msg("Error creating profile")
		return fmt.Errorf("error creating profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) getBy(ctx context.Context, where squirrel.Sqlizer) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).From("profiles").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	p, err := scanProfile(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return p, nil
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetByUserID retrieves the profile owned by a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return r.getBy(ctx, squirrel.Eq{"user_id": userID})
}

// List returns one page of profiles ordered by name, optionally of one type
func (r *ProfileRepository) List(ctx context.Context, filter dto.ProfileFilter) ([]*models.Profile, int64, error) {
	where := squirrel.And{}
	if filter.ProfileType != "" {
		where = append(where, squirrel.Eq{"profile_type": string(filter.ProfileType)})
	}

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("profiles").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count profiles query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting profiles: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(where).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list profiles query: %w", err)
	}

	profiles, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// ListAll returns every profile, or every profile of one type when profileType
// is set. Used by the matcher and the directory, which rank in memory.
func (r *ProfileRepository) ListAll(ctx context.Context, profileType models.ProfileType) ([]*models.Profile, error) {
	q := r.sb.Select(profileColumns...).From("profiles").OrderBy("name ASC", "id ASC")
	if profileType != "" {
		q = q.Where(squirrel.Eq{"profile_type": string(profileType)})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list profiles query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *ProfileRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Profile, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	defer rows.Close()

	profiles := []*models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}
	return profiles, nil
}

// Update writes every editable column of p. The profile type is never updated.
func (r *ProfileRepository) Update(ctx context.Context, p *models.Profile) error {
	details, err := marshalDetails(p.Details)
	if err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("profiles").
		Set("name", p.Name).
		Set("email", p.Email).
		Set("location", p.Location).
		Set("bio", p.Bio).
		Set("avatar_url", p.AvatarURL).
		Set("interests", helpers.NonNil(p.Interests)).
		Set("details", details).
		Set("updated_at", p.UpdatedAt).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", p.ID.String()).Msg("Error updating profile")
		return fmt.Errorf("error updating profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}

// Delete removes a profile. Collaborations, posts, replies, questions and
// submissions go with it through ON DELETE CASCADE.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("profiles").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete profile query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}
	return nil
}
