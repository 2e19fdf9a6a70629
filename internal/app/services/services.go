package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/repositories"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/auth"
	"github.com/impactlink/impactlink/internal/pkg/cache"
	"github.com/impactlink/impactlink/internal/pkg/filestorage"
	"github.com/impactlink/impactlink/internal/pkg/matching"
)

// Services defined in this package:
// - AuthService: accounts, tokens and the session view
// - ProfileService: the one-profile-per-user store
// - MatchService: partner matches, cached in redis
// - DirectoryService: the unified, filterable directory
// - CollaborationService: connection requests and their state machine
// - ForumService, ResearchQuestionService, EventService, ResourceService,
//   SubmissionService: the community subsystems
// - AdminService: dashboard stats and confirmed deletes
// - Notifier: broker, websocket and email fan-out

// Services groups every service the controllers need
type Services struct {
	Auth             *AuthService
	Profile          ProfileService
	Match            MatchService
	Directory        DirectoryService
	Collaboration    CollaborationService
	Forum            ForumService
	ResearchQuestion ResearchQuestionService
	Event            EventService
	Resource         ResourceService
	Submission       SubmissionService
	Admin            AdminService
	Notifier         Notifier
}

// Dependencies carries what NewServices wires together
type Dependencies struct {
	Repos         *repositories.Repositories
	Authz         AdminChecker
	JWT           *auth.JWTService
	Cache         cache.Cache
	MatchCacheTTL time.Duration
	MatchWeights  matching.Weights
	MatchLimit    int
	Storage       filestorage.FileStorage
	Notifier      Notifier
	Clock         Clock
	Logger        zerolog.Logger
}

// NewServices builds the service layer on top of the repositories
func NewServices(deps Dependencies) *Services {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Cache == nil {
		deps.Cache = cache.NoopCache{}
	}
	repos := deps.Repos
	log := deps.Logger

	match := NewMatchService(repos.ProfileRepository, deps.Cache, deps.MatchCacheTTL, matching.NewScorer(deps.MatchWeights), deps.MatchLimit,
		log.With().Str("service", "match").Logger())

	return &Services{
		Auth: NewAuthService(repos.UserRepository, repos.TokenRepository, repos.ProfileRepository, deps.Authz, deps.JWT,
			log.With().Str("service", "auth").Logger()),
		Profile: NewProfileService(repos.ProfileRepository, deps.Authz, match,
			log.With().Str("service", "profile").Logger()),
		Match:     match,
		Directory: NewDirectoryService(repos.ProfileRepository),
		Collaboration: NewCollaborationService(repos.CollaborationRepository, repos.ProfileRepository, deps.Notifier,
			log.With().Str("service", "collaboration").Logger()),
		Forum: NewForumService(repos.ForumRepository, repos.ProfileRepository, deps.Authz,
			log.With().Str("service", "forum").Logger()),
		ResearchQuestion: NewResearchQuestionService(repos.ResearchQuestionRepository, repos.ProfileRepository, deps.Authz),
		Event: NewEventService(repos.EventRepository, repos.UserRepository, deps.Notifier, deps.Clock,
			log.With().Str("service", "event").Logger()),
		Resource: NewResourceService(repos.ResourceRepository),
		Submission: NewSubmissionService(repos.SubmissionRepository, repos.ProfileRepository, deps.Authz, deps.Storage, deps.Notifier,
			log.With().Str("service", "submission").Logger()),
		Admin: NewAdminService(repos.StatsRepository, repos.ProfileRepository, repos.EventRepository, repos.ResourceRepository, repos.ForumRepository, match, deps.Clock,
			log.With().Str("service", "admin").Logger()),
		Notifier: deps.Notifier,
	}
}

// requireProfile returns the caller's profile, or ErrProfileRequired when the
// account has not created one yet.
func requireProfile(ctx context.Context, profiles ProfileStore, userID uuid.UUID) (*models.Profile, error) {
	p, err := profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileRequired
		}
		return nil, err
	}
	return p, nil
}

// canModify reports whether callerID owns the record or is an admin
func canModify(ctx context.Context, authz AdminChecker, callerID, ownerUserID uuid.UUID) (bool, error) {
	if callerID == ownerUserID {
		return true, nil
	}
	if authz == nil {
		return false, nil
	}
	return authz.IsAdmin(ctx, callerID)
}

// canModifyAuthored is canModify for rows authored by a profile
func canModifyAuthored(ctx context.Context, profiles ProfileStore, authz AdminChecker, callerID, authorProfileID uuid.UUID) (bool, error) {
	p, err := profiles.GetByUserID(ctx, callerID)
	switch {
	case err == nil && p.ID == authorProfileID:
		return true, nil
	case err != nil && !errors.Is(err, apperrors.ErrProfileNotFound):
		return false, err
	}
	if authz == nil {
		return false, nil
	}
	return authz.IsAdmin(ctx, callerID)
}
