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

// ResearchQuestionRepository handles research question rows
type ResearchQuestionRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResearchQuestionRepository creates a new ResearchQuestionRepository
func NewResearchQuestionRepository(db *pgxpool.Pool) *ResearchQuestionRepository {
	return &ResearchQuestionRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *ResearchQuestionRepository) selectQuestions() squirrel.SelectBuilder {
	columns := []string{
		"q.id", "q.author_id", "q.title", "q.description", "q.topics", "q.regions",
		"q.populations", "q.status", "q.created_at", "q.updated_at",
	}
	return r.sb.Select(append(columns, authorColumns("a")...)...).
		From("research_questions q").
		Join("profiles a ON a.id = q.author_id")
}

func scanQuestion(row rowScanner) (*models.ResearchQuestion, error) {
	q := &models.ResearchQuestion{Author: &models.ProfileSummary{}}
	err := row.Scan(&q.ID, &q.AuthorID, &q.Title, &q.Description, &q.Topics, &q.Regions,
		&q.Populations, &q.Status, &q.CreatedAt, &q.UpdatedAt,
		&q.Author.ID, &q.Author.Name, &q.Author.ProfileType, &q.Author.AvatarURL)
	if err != nil {
		return nil, err
	}
	q.Topics = helpers.NonNil(q.Topics)
	q.Regions = helpers.NonNil(q.Regions)
	q.Populations = helpers.NonNil(q.Populations)
	return q, nil
}

// questionFilter turns the list filter into containment predicates: a question
// matches when its arrays hold every requested value.
func questionFilter(filter dto.ResearchQuestionFilter) squirrel.And {
	where := squirrel.And{}
	if len(filter.Topics) > 0 {
		where = append(where, squirrel.Expr("q.topics @> ?", filter.Topics))
	}
	if len(filter.Regions) > 0 {
		where = append(where, squirrel.Expr("q.regions @> ?", filter.Regions))
	}
	if len(filter.Populations) > 0 {
		where = append(where, squirrel.Expr("q.populations @> ?", filter.Populations))
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"q.status": string(filter.Status)})
	}
	if filter.AuthorID != nil {
		where = append(where, squirrel.Eq{"q.author_id": *filter.AuthorID})
	}
	return where
}

// Create inserts a question and returns it with its author
func (r *ResearchQuestionRepository) Create(ctx context.Context, q *models.ResearchQuestion) (*models.ResearchQuestion, error) {
	if q.Status == "" {
		q.Status = models.QuestionOpen
	}

	sql, args, err := r.sb.Insert("research_questions").
		Columns("author_id", "title", "description", "topics", "regions", "populations", "status").
		Values(q.AuthorID, q.Title, q.Description, helpers.NonNil(q.Topics), helpers.NonNil(q.Regions),
			helpers.NonNil(q.Populations), string(q.Status)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create research question query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("error creating research question: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID retrieves a question with its author
func (r *ResearchQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ResearchQuestion, error) {
	sql, args, err := r.selectQuestions().Where(squirrel.Eq{"q.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get research question query: %w", err)
	}

	q, err := scanQuestion(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResearchQuestionNotFound
		}
		return nil, fmt.Errorf("error retrieving research question: %w", err)
	}
	return q, nil
}

// List returns one page of questions, newest first
func (r *ResearchQuestionRepository) List(ctx context.Context, filter dto.ResearchQuestionFilter) ([]*models.ResearchQuestion, int64, error) {
	where := questionFilter(filter)

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("research_questions q").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count research questions query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting research questions: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.selectQuestions().
		Where(where).
		OrderBy("q.created_at DESC", "q.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list research questions query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing research questions: %w", err)
	}
	defer rows.Close()

	questions := []*models.ResearchQuestion{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning research question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating research questions: %w", err)
	}
	return questions, total, nil
}

// UpdateStatus sets a question's lifecycle status
func (r *ResearchQuestionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuestionStatus) error {
	sql, args, err := r.sb.Update("research_questions").
		Set("status", string(status)).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update research question status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating research question status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchQuestionNotFound
	}
	return nil
}

// Delete removes a question
func (r *ResearchQuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.sb.Delete("research_questions").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete research question query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting research question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResearchQuestionNotFound
	}
	return nil
}
