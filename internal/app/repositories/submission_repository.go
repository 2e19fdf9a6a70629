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
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// SubmissionRepository handles research submissions
type SubmissionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *SubmissionRepository) selectSubmissions() squirrel.SelectBuilder {
	columns := []string{
		"s.id", "s.author_id", "s.title", "s.abstract", "s.keywords", "s.file_path", "s.file_url",
		"s.file_name", "s.file_size", "s.mime_type", "s.status", "s.reviewer_notes", "s.reviewed_by",
		"s.reviewed_at", "s.created_at", "s.updated_at",
	}
	return r.sb.Select(append(columns, authorColumns("a")...)...).
		From("submissions s").
		Join("profiles a ON a.id = s.author_id")
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	s := &models.Submission{Author: &models.ProfileSummary{}}
	err := row.Scan(&s.ID, &s.AuthorID, &s.Title, &s.Abstract, &s.Keywords, &s.FilePath, &s.FileURL,
		&s.FileName, &s.FileSize, &s.MimeType, &s.Status, &s.ReviewerNotes, &s.ReviewedBy,
		&s.ReviewedAt, &s.CreatedAt, &s.UpdatedAt,
		&s.Author.ID, &s.Author.Name, &s.Author.ProfileType, &s.Author.AvatarURL)
	if err != nil {
		return nil, err
	}
	s.Keywords = helpers.NonNil(s.Keywords)
	return s, nil
}

// Create inserts a pending submission and returns it with its author
func (r *SubmissionRepository) Create(ctx context.Context, s *models.Submission) (*models.Submission, error) {
	sql, args, err := r.sb.Insert("submissions").
		Columns("author_id", "title", "abstract", "keywords", "file_path", "file_url", "file_name",
			"file_size", "mime_type", "status").
		Values(s.AuthorID, s.Title, s.Abstract, helpers.NonNil(s.Keywords), s.FilePath, s.FileURL, s.FileName,
			s.FileSize, s.MimeType, string(models.SubmissionPending)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create submission query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("error creating submission: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a submission with its author
func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	sql, args, err := r.selectSubmissions().Where(squirrel.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get submission query: %w", err)
	}

	s, err := scanSubmission(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("error retrieving submission: %w", err)
	}
	return s, nil
}

// List returns one page of submissions, newest first. authorID narrows the
// list to one author.
func (r *SubmissionRepository) List(ctx context.Context, filter dto.SubmissionFilter, authorID *uuid.UUID) ([]*models.Submission, int64, error) {
	where := squirrel.And{}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"s.status": string(filter.Status)})
	}
	if authorID != nil {
		where = append(where, squirrel.Eq{"s.author_id": *authorID})
	}

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("submissions s").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count submissions query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting submissions: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.selectSubmissions().
		Where(where).
		OrderBy("s.created_at DESC", "s.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list submissions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing submissions: %w", err)
	}
	defer rows.Close()

	submissions := []*models.Submission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating submissions: %w", err)
	}
	return submissions, total, nil
}

// Review records an admin decision on a pending submission. Reviewed
// submissions are not changed again.
func (r *SubmissionRepository) Review(ctx context.Context, id uuid.UUID, status models.SubmissionStatus, notes *string, reviewerID uuid.UUID) error {
	now := time.Now()
	sql, args, err := r.sb.Update("submissions").
		Set("status", string(status)).
		Set("reviewer_notes", notes).
		Set("reviewed_by", reviewerID).
		Set("reviewed_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id, "status": string(models.SubmissionPending)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build review submission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error reviewing submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return apperrors.ErrSubmissionReviewed
	}
	return nil
}

// Delete removes a submission row. The stored file is removed by the caller.
func (r *SubmissionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("submissions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete submission query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting submission: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubmissionNotFound
	}
	return nil
}
