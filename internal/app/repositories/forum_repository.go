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
	"github.com/impactlink/impactlink/internal/pkg/dberrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// ForumRepository handles topics, posts and replies. Post and reply counts are
// computed with COUNT subqueries on every read and never stored.
type ForumRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// --- Topics ---

func (r *ForumRepository) selectTopics() squirrel.SelectBuilder {
	return r.sb.Select("t.id", "t.name", "t.description", "t.category",
		"(SELECT COUNT(*) FROM forum_posts fp WHERE fp.topic_id = t.id) AS post_count",
		"t.created_at", "t.updated_at").
		From("forum_topics t")
}

func scanTopic(row rowScanner) (*models.ForumTopic, error) {
	t := &models.ForumTopic{}
	if err := row.Scan(&t.ID, &t.Name, &t.Description, &t.Category, &t.PostCount, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTopic inserts a topic; names are unique
func (r *ForumRepository) CreateTopic(ctx context.Context, t *models.ForumTopic) error {
	sql, args, err := r.sb.Insert("forum_topics").
		Columns("name", "description", "category").
		Values(t.Name, t.Description, t.Category).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create topic query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "forum_topics_name_key") {
			return apperrors.NewConflictError(fmt.Sprintf("A topic named %q already exists", t.Name))
		}
		return fmt.Errorf("error creating topic: %w", err)
	}
	return nil
}

// GetTopic retrieves a topic with its post count
func (r *ForumRepository) GetTopic(ctx context.Context, id uuid.UUID) (*models.ForumTopic, error) {
	sql, args, err := r.selectTopics().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get topic query: %w", err)
	}

	t, err := scanTopic(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("error retrieving topic: %w", err)
	}
	return t, nil
}

// ListTopics returns all topics ordered by category then name
func (r *ForumRepository) ListTopics(ctx context.Context) ([]*models.ForumTopic, error) {
	sql, args, err := r.selectTopics().OrderBy("t.category ASC NULLS LAST", "t.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list topics query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing topics: %w", err)
	}
	defer rows.Close()

	topics := []*models.ForumTopic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning topic: %w", err)
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// UpdateTopic replaces a topic's editable fields
func (r *ForumRepository) UpdateTopic(ctx context.Context, t *models.ForumTopic) error {
	t.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("forum_topics").
		Set("name", t.Name).
		Set("description", t.Description).
		Set("category", t.Category).
		Set("updated_at", t.UpdatedAt).
		Where(squirrel.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update topic query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "forum_topics_name_key") {
			return apperrors.NewConflictError(fmt.Sprintf("A topic named %q already exists", t.Name))
		}
		return fmt.Errorf("error updating topic: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}
	return nil
}

// DeleteTopic removes a topic with all of its posts and replies
func (r *ForumRepository) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "forum_topics", id, apperrors.ErrTopicNotFound)
}

// --- Posts ---

func (r *ForumRepository) selectPosts() squirrel.SelectBuilder {
	columns := []string{
		"p.id", "p.topic_id", "p.author_id", "p.title", "p.content", "p.tags",
		"(SELECT COUNT(*) FROM forum_replies fr WHERE fr.post_id = p.id) AS reply_count",
		"p.created_at", "p.updated_at",
	}
	return r.sb.Select(append(columns, authorColumns("a")...)...).
		From("forum_posts p").
		Join("profiles a ON a.id = p.author_id")
}

func scanPost(row rowScanner) (*models.ForumPost, error) {
	p := &models.ForumPost{Author: &models.ProfileSummary{}}
	err := row.Scan(&p.ID, &p.TopicID, &p.AuthorID, &p.Title, &p.Content, &p.Tags, &p.ReplyCount,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Author.ID, &p.Author.Name, &p.Author.ProfileType, &p.Author.AvatarURL)
	if err != nil {
		return nil, err
	}
	p.Tags = helpers.NonNil(p.Tags)
	return p, nil
}

// CreatePost inserts a post and returns it with its author
func (r *ForumRepository) CreatePost(ctx context.Context, p *models.ForumPost) (*models.ForumPost, error) {
	sql, args, err := r.sb.Insert("forum_posts").
		Columns("topic_id", "author_id", "title", "content", "tags").
		Values(p.TopicID, p.AuthorID, p.Title, p.Content, helpers.NonNil(p.Tags)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create post query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return nil, apperrors.ErrTopicNotFound
		}
		logger.Error().Err(err).Str("topicID", p.TopicID.String()).Msg("Error creating forum post")
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return r.GetPost(ctx, id)
}

// GetPost retrieves a post with its reply count and author
func (r *ForumRepository) GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error) {
	sql, args, err := r.selectPosts().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get post query: %w", err)
	}

	p, err := scanPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error retrieving post: %w", err)
	}
	return p, nil
}

// ListPosts returns one page of posts, newest first
func (r *ForumRepository) ListPosts(ctx context.Context, filter dto.PostFilter) ([]*models.ForumPost, int64, error) {
	where := squirrel.And{}
	if filter.TopicID != nil {
		where = append(where, squirrel.Eq{"p.topic_id": *filter.TopicID})
	}
	if filter.Tag != "" {
		where = append(where, squirrel.Expr("? = ANY(p.tags)", filter.Tag))
	}

	var total int64
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("forum_posts p").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count posts query: %w", err)
	}
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting posts: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.PageSize)
	sql, args, err := r.selectPosts().
		Where(where).
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.ForumPost{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, total, nil
}

// DeletePost removes a post and its replies
func (r *ForumRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "forum_posts", id, apperrors.ErrPostNotFound)
}

// --- Replies ---

func (r *ForumRepository) selectReplies() squirrel.SelectBuilder {
	columns := []string{"r.id", "r.post_id", "r.author_id", "r.content", "r.created_at"}
	return r.sb.Select(append(columns, authorColumns("a")...)...).
		From("forum_replies r").
		Join("profiles a ON a.id = r.author_id")
}

func scanReply(row rowScanner) (*models.ForumReply, error) {
	reply := &models.ForumReply{Author: &models.ProfileSummary{}}
	err := row.Scan(&reply.ID, &reply.PostID, &reply.AuthorID, &reply.Content, &reply.CreatedAt,
		&reply.Author.ID, &reply.Author.Name, &reply.Author.ProfileType, &reply.Author.AvatarURL)
	if err != nil {
		return nil, err
	}
	return reply, nil
}

// CreateReply inserts a reply and returns it with its author
func (r *ForumRepository) CreateReply(ctx context.Context, reply *models.ForumReply) (*models.ForumReply, error) {
	sql, args, err := r.sb.Insert("forum_replies").
		Columns("post_id", "author_id", "content").
		Values(reply.PostID, reply.AuthorID, reply.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create reply query: %w", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyError(err) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, fmt.Errorf("error creating reply: %w", err)
	}
	return r.GetReply(ctx, id)
}

// GetReply retrieves a reply with its author
func (r *ForumRepository) GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error) {
	sql, args, err := r.selectReplies().Where(squirrel.Eq{"r.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get reply query: %w", err)
	}

	reply, err := scanReply(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReplyNotFound
		}
		return nil, fmt.Errorf("error retrieving reply: %w", err)
	}
	return reply, nil
}

// ListReplies returns a post's replies, oldest first
func (r *ForumRepository) ListReplies(ctx context.Context, postID uuid.UUID) ([]*models.ForumReply, error) {
	sql, args, err := r.selectReplies().
		Where(squirrel.Eq{"r.post_id": postID}).
		OrderBy("r.created_at ASC", "r.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list replies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing replies: %w", err)
	}
	defer rows.Close()

	replies := []*models.ForumReply{}
	for rows.Next() {
		reply, err := scanReply(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reply: %w", err)
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}

// DeleteReply removes one reply
func (r *ForumRepository) DeleteReply(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "forum_replies", id, apperrors.ErrReplyNotFound)
}

func (r *ForumRepository) deleteByID(ctx context.Context, table string, id uuid.UUID, notFound error) error {
	sql, args, err := r.sb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query for %s: %w", table, err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting from %s: %w", table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
