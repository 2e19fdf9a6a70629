package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/repositories"
)

// The store interfaces below are satisfied by the repositories package and
// by the in-memory fakes used in tests.

// UserStore persists accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// TokenStore persists refresh tokens
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error
	GetToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// ProfileStore persists profiles
type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	List(ctx context.Context, filter dto.ProfileFilter) ([]*models.Profile, int64, error)
	ListAll(ctx context.Context, profileType models.ProfileType) ([]*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollaborationStore persists connection requests
type CollaborationStore interface {
	Create(ctx context.Context, c *models.Collaboration) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Collaboration, error)
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]*models.Collaboration, error)
	ListForProfile(ctx context.Context, profileID uuid.UUID, status models.CollaborationStatus, direction repositories.CollaborationDirection) ([]*models.Collaboration, error)
	Resolve(ctx context.Context, id uuid.UUID, status models.CollaborationStatus) error
}

// ForumStore persists topics, posts and replies
type ForumStore interface {
	CreateTopic(ctx context.Context, t *models.ForumTopic) error
	GetTopic(ctx context.Context, id uuid.UUID) (*models.ForumTopic, error)
	ListTopics(ctx context.Context) ([]*models.ForumTopic, error)
	UpdateTopic(ctx context.Context, t *models.ForumTopic) error

	CreatePost(ctx context.Context, p *models.ForumPost) (*models.ForumPost, error)
	GetPost(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)
	ListPosts(ctx context.Context, filter dto.PostFilter) ([]*models.ForumPost, int64, error)
	DeletePost(ctx context.Context, id uuid.UUID) error

	CreateReply(ctx context.Context, reply *models.ForumReply) (*models.ForumReply, error)
	GetReply(ctx context.Context, id uuid.UUID) (*models.ForumReply, error)
	ListReplies(ctx context.Context, postID uuid.UUID) ([]*models.ForumReply, error)
	DeleteReply(ctx context.Context, id uuid.UUID) error
}

// ResearchQuestionStore persists portal questions
type ResearchQuestionStore interface {
	Create(ctx context.Context, q *models.ResearchQuestion) (*models.ResearchQuestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ResearchQuestion, error)
	List(ctx context.Context, filter dto.ResearchQuestionFilter) ([]*models.ResearchQuestion, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.QuestionStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// EventStore persists events and seat registrations
type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	List(ctx context.Context, filter dto.EventFilter) ([]*models.Event, int64, error)
	ListRegisteredFor(ctx context.Context, userID uuid.UUID) ([]*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	Register(ctx context.Context, eventID, userID uuid.UUID, now time.Time) (*models.EventRegistration, error)
	CancelRegistration(ctx context.Context, eventID, userID uuid.UUID, now time.Time) error
	RegisteredEventIDs(ctx context.Context, userID uuid.UUID, eventIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ListRegistrations(ctx context.Context, eventID uuid.UUID) ([]*models.EventRegistration, error)
}

// ResourceStore persists library resources and bookmarks
type ResourceStore interface {
	Create(ctx context.Context, res *models.Resource) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error)
	List(ctx context.Context, filter dto.ResourceFilter) ([]*models.Resource, int64, error)
	Update(ctx context.Context, res *models.Resource) error
	ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (bool, error)
	DeleteBookmark(ctx context.Context, userID, resourceID uuid.UUID) error
	ListBookmarked(ctx context.Context, userID uuid.UUID) ([]*models.Resource, error)
	BookmarkedIDs(ctx context.Context, userID uuid.UUID, resourceIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

// SubmissionStore persists research submissions
type SubmissionStore interface {
	Create(ctx context.Context, s *models.Submission) (*models.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error)
	List(ctx context.Context, filter dto.SubmissionFilter, authorID *uuid.UUID) ([]*models.Submission, int64, error)
	Review(ctx context.Context, id uuid.UUID, status models.SubmissionStatus, notes *string, reviewerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsStore computes dashboard counters
type StatsStore interface {
	DashboardStats(ctx context.Context, now time.Time) (*models.DashboardStats, error)
}

// AdminChecker answers the role check
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Clock returns the current time. Services take one so deadlines are testable.
type Clock func() time.Time
