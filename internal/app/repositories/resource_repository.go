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
)

var resourceColumns = []string{
	"r.id", "r.title", "r.description", "r.resource_type", "r.format", "r.category",
	"r.url", "r.tags", "r.created_at", "r.updated_at",
}

// ResourceRepository handles the resource library and bookmarks
type ResourceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResourceRepository creates a new ResourceRepository
func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func scanResource(row rowScanner) (*models.Resource, error) {
	res := &models.Resource{}
	err := row.Scan(&res.ID, &res.Title, &res.Description, &res.ResourceType, &res.Format, &res.Category,
		&res.URL, &res.Tags, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	res.Tags = helpers.NonNil(res.Tags)
	return res, nil
}

// Create inserts a resource
func (r *ResourceRepository) Create(ctx context.Context, res *models.Resource) error {
	sql, args, err := r.sb.Insert("resources").
		Columns("title", "description", "resource_type", "format", "category", "url", "tags").
		Values(res.Title, res.Description, string(res.ResourceType), string(res.Format), res.Category,
			res.URL, helpers.NonNil(res.Tags)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create resource query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return fmt.Errorf("error creating resource: %w", err)
	}
	return nil
}

// GetByID retrieves a resource
func (r *ResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).From("resources r").Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get resource query: %w", err)
	}

	res, err := scanResource(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLearningResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}
	return res, nil
}

// List returns one page of resources, newest first
func (r *ResourceRepository) List(ctx context.Context, filter dto.ResourceFilter) ([]*models.Resource, int64, error) {
	where := squirrel.And{}
	if filter.ResourceType != "" {
		where = append(where, squirrel.Eq{"r.resource_type": string(filter.ResourceType)})
	}
	if filter.Format != "" {
		where = append(where, squirrel.Eq{"r.format": string(filter.Format)})
	}
	if filter.Category != "" {
		where = append(where, squirrel.ILike{"r.category": filter.Category})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"r.title": pattern},
			squirrel.ILike{"r.description": pattern},
			squirrel.Expr("array_to_string(r.tags, ' ') ILIKE ?", pattern),
		})
	}

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("resources r").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count resources query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting resources: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources r").
		Where(where).
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list resources query: %w", err)
	}

	resources, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *ResourceRepository) query(ctx context.Context, sql string, args ...any) ([]*models.Resource, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

// Update replaces a resource's editable fields
func (r *ResourceRepository) Update(ctx context.Context, res *models.Resource) error {
	res.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("resources").
		Set("title", res.Title).
		Set("description", res.Description).
		Set("resource_type", string(res.ResourceType)).
		Set("format", string(res.Format)).
		Set("category", res.Category).
		Set("url", res.URL).
		Set("tags", helpers.NonNil(res.Tags)).
		Set("updated_at", res.UpdatedAt).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLearningResourceNotFound
	}
	return nil
}

// Delete removes a resource and every bookmark of it
func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting resource: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLearningResourceNotFound
	}
	return nil
}

// --- Bookmarks ---

// ToggleBookmark removes the bookmark when present and adds it otherwise,
// returning the resulting state.
func (r *ResourceRepository) ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error) {
	var bookmarked bool
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM bookmarks WHERE user_id = $1 AND resource_id = $2`, userID, resourceID)
		if err != nil {
			return fmt.Errorf("error removing bookmark: %w", err)
		}
		if cmdTag.RowsAffected() > 0 {
			bookmarked = false
			return nil
		}

		_, err = tx.Exec(ctx, `INSERT INTO bookmarks (user_id, resource_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, resourceID)
		if err != nil {
			if dberrors.IsForeignKeyError(err) {
				return apperrors.ErrLearningResourceNotFound
			}
			return fmt.Errorf("error adding bookmark: %w", err)
		}
		bookmarked = true
		return nil
	})
	return bookmarked, err
}

// DeleteBookmark removes a bookmark
func (r *ResourceRepository) DeleteBookmark(ctx context.Context, userID, resourceID uuid.UUID) error {
	sql, args, err := r.sb.Delete("bookmarks").
		Where(squirrel.Eq{"user_id": userID, "resource_id": resourceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete bookmark query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting bookmark: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBookmarkNotFound
	}
	return nil
}

// ListBookmarked returns the resources userID saved, most recently saved first
func (r *ResourceRepository) ListBookmarked(ctx context.Context, userID uuid.UUID) ([]*models.Resource, error) {
	sql, args, err := r.sb.Select(resourceColumns...).
		From("resources r").
		Join("bookmarks b ON b.resource_id = r.id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bookmarked resources query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// BookmarkedIDs reports which of resourceIDs userID has bookmarked
func (r *ResourceRepository) BookmarkedIDs(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	marked := make(map[uuid.UUID]bool, len(resourceIDs))
	if len(resourceIDs) == 0 {
		return marked, nil
	}

	sql, args, err := r.sb.Select("resource_id").
		From("bookmarks").
		Where(squirrel.Eq{"user_id": userID, "resource_id": resourceIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build bookmarked ids query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("error scanning bookmarks: %w", err)
	}
	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}
