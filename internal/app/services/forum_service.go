package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ForumService defines the interface for forum operations
type ForumService interface {
	ListTopics(ctx context.Context) ([]*models.ForumTopic, error)
	GetTopic(ctx context.Context, id uuid.UUID) (*models.ForumTopic, error)
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*models.ForumTopic, error)
	UpdateTopic(ctx context.Context, id uuid.UUID, req *dto.UpdateTopicRequest) (*models.ForumTopic, error)

	ListPosts(ctx context.Context, filter dto.PostFilter) (*dto.PaginatedResponse, error)
	GetPost(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error)
	CreatePost(ctx context.Context, userID, topicID uuid.UUID, req *dto.CreatePostRequest) (*models.ForumPost, error)
	DeletePost(ctx context.Context, userID, postID uuid.UUID) error

	CreateReply(ctx context.Context, userID, postID uuid.UUID, req *dto.CreateReplyRequest) (*models.ForumReply, error)
	DeleteReply(ctx context.Context, userID, replyID uuid.UUID) error
}

// forumServiceImpl implements the ForumService interface
type forumServiceImpl struct {
	forumRepo   ForumStore
	profileRepo ProfileStore
	authz       AdminChecker
	logger      zerolog.Logger
}

// NewForumService creates a new forum service instance
func NewForumService(forumRepo ForumStore, profileRepo ProfileStore, authz AdminChecker, logger zerolog.Logger) ForumService {
	return &forumServiceImpl{
		forumRepo:   forumRepo,
		profileRepo: profileRepo,
		authz:       authz,
		logger:      logger,
	}
}

func (s *forumServiceImpl) ListTopics(ctx context.Context) ([]*models.ForumTopic, error) {
	topics, err := s.forumRepo.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []*models.ForumTopic{}
	}
	return topics, nil
}

func (s *forumServiceImpl) GetTopic(ctx context.Context, id uuid.UUID) (*models.ForumTopic, error) {
	return s.forumRepo.GetTopic(ctx, id)
}

// CreateTopic adds a topic. Callers are admins; the route enforces it.
func (s *forumServiceImpl) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*models.ForumTopic, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	topic := &models.ForumTopic{
		Name:        name,
		Description: helpers.TrimmedOrNil(req.Description),
		Category:    helpers.TrimmedOrNil(req.Category),
	}
	if err := s.forumRepo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *forumServiceImpl) UpdateTopic(ctx context.Context, id uuid.UUID, req *dto.UpdateTopicRequest) (*models.ForumTopic, error) {
	topic, err := s.forumRepo.GetTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	topic.Name = name
	topic.Description = helpers.TrimmedOrNil(req.Description)
	topic.Category = helpers.TrimmedOrNil(req.Category)

	if err := s.forumRepo.UpdateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

// ListPosts returns a page of posts, newest first
func (s *forumServiceImpl) ListPosts(ctx context.Context, filter dto.PostFilter) (*dto.PaginatedResponse, error) {
	if filter.TopicID != nil {
		if _, err := s.forumRepo.GetTopic(ctx, *filter.TopicID); err != nil {
			return nil, err
		}
	}
	filter.Tag = strings.TrimSpace(filter.Tag)

	posts, total, err := s.forumRepo.ListPosts(ctx, filter)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []*models.ForumPost{}
	}
	return &dto.PaginatedResponse{
		Items:      posts,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// GetPost returns a post with its replies, oldest reply first
func (s *forumServiceImpl) GetPost(ctx context.Context, id uuid.UUID) (*dto.PostDetailResponse, error) {
	post, err := s.forumRepo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	replies, err := s.forumRepo.ListReplies(ctx, id)
	if err != nil {
		return nil, err
	}
	if replies == nil {
		replies = []*models.ForumReply{}
	}
	return &dto.PostDetailResponse{Post: post, Replies: replies}, nil
}

// CreatePost starts a thread authored by the caller's profile
func (s *forumServiceImpl) CreatePost(ctx context.Context, userID, topicID uuid.UUID, req *dto.CreatePostRequest) (*models.ForumPost, error) {
	author, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.forumRepo.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}

	title, content := strings.TrimSpace(req.Title), strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.forumRepo.CreatePost(ctx, &models.ForumPost{
		TopicID:  topicID,
		AuthorID: author.ID,
		Title:    title,
		Content:  content,
		Tags:     models.NormalizeTags(req.Tags),
	})
}

// DeletePost removes a post and, by cascade, its replies. Authors and admins only.
func (s *forumServiceImpl) DeletePost(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.forumRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, post.AuthorID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("only the author or an admin can delete this post")
	}
	return s.forumRepo.DeletePost(ctx, postID)
}

// CreateReply answers a post as the caller's profile
func (s *forumServiceImpl) CreateReply(ctx context.Context, userID, postID uuid.UUID, req *dto.CreateReplyRequest) (*models.ForumReply, error) {
	author, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.forumRepo.GetPost(ctx, postID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: content cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.forumRepo.CreateReply(ctx, &models.ForumReply{
		PostID:   postID,
		AuthorID: author.ID,
		Content:  content,
	})
}

func (s *forumServiceImpl) DeleteReply(ctx context.Context, userID, replyID uuid.UUID) error {
	reply, err := s.forumRepo.GetReply(ctx, replyID)
	if err != nil {
		return err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, reply.AuthorID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("only the author or an admin can delete this reply")
	}
	return s.forumRepo.DeleteReply(ctx, replyID)
}
