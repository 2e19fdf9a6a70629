package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

// AdminService backs the moderation dashboard. Every destructive call takes
// the confirm flag and refuses to run without it.
type AdminService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	DeleteProfile(ctx context.Context, adminID, profileID uuid.UUID, confirm bool) error
	DeleteEvent(ctx context.Context, adminID, eventID uuid.UUID, confirm bool) error
	DeleteResource(ctx context.Context, adminID, resourceID uuid.UUID, confirm bool) error
	DeleteTopic(ctx context.Context, adminID, topicID uuid.UUID, confirm bool) error
}

type adminProfileStore interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminEventStore interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminResourceStore interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type adminTopicStore interface {
	DeleteTopic(ctx context.Context, id uuid.UUID) error
}

// adminServiceImpl implements the AdminService interface
type adminServiceImpl struct {
	statsRepo    StatsStore
	profileRepo  adminProfileStore
	eventRepo    adminEventStore
	resourceRepo adminResourceStore
	topicRepo    adminTopicStore
	matches      matchInvalidator
	now          Clock
	logger       zerolog.Logger
}

// NewAdminService creates a new admin service instance
func NewAdminService(
	statsRepo StatsStore,
	profileRepo adminProfileStore,
	eventRepo adminEventStore,
	resourceRepo adminResourceStore,
	topicRepo adminTopicStore,
	matches matchInvalidator,
	now Clock,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		statsRepo:    statsRepo,
		profileRepo:  profileRepo,
		eventRepo:    eventRepo,
		resourceRepo: resourceRepo,
		topicRepo:    topicRepo,
		matches:      matches,
		now:          now,
		logger:       logger,
	}
}

func (s *adminServiceImpl) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.statsRepo.DashboardStats(ctx, s.now())
}

// confirmed runs del only when the caller confirmed the action
func (s *adminServiceImpl) confirmed(adminID, id uuid.UUID, kind string, confirm bool, del func() error) error {
	if !confirm {
		return apperrors.ErrConfirmRequired
	}
	if err := del(); err != nil {
		return err
	}
	s.logger.Info().
		Str("adminID", adminID.String()).
		Str("kind", kind).
		Str("id", id.String()).
		Msg("Admin deleted record")
	return nil
}

func (s *adminServiceImpl) DeleteProfile(ctx context.Context, adminID, profileID uuid.UUID, confirm bool) error {
	err := s.confirmed(adminID, profileID, "profile", confirm, func() error {
		return s.profileRepo.Delete(ctx, profileID)
	})
	if err == nil && s.matches != nil {
		s.matches.InvalidateMatches(ctx)
	}
	return err
}

func (s *adminServiceImpl) DeleteEvent(ctx context.Context, adminID, eventID uuid.UUID, confirm bool) error {
	return s.confirmed(adminID, eventID, "event", confirm, func() error {
		return s.eventRepo.Delete(ctx, eventID)
	})
}

func (s *adminServiceImpl) DeleteResource(ctx context.Context, adminID, resourceID uuid.UUID, confirm bool) error {
	return s.confirmed(adminID, resourceID, "resource", confirm, func() error {
		return s.resourceRepo.Delete(ctx, resourceID)
	})
}

func (s *adminServiceImpl) DeleteTopic(ctx context.Context, adminID, topicID uuid.UUID, confirm bool) error {
	return s.confirmed(adminID, topicID, "forum_topic", confirm, func() error {
		return s.topicRepo.DeleteTopic(ctx, topicID)
	})
}
