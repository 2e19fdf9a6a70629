package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/cache"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
	"github.com/impactlink/impactlink/internal/pkg/matching"
)

const matchCachePrefix = "matches:"

// MatchService ranks partner candidates for a profile
type MatchService interface {
	GetPartnerMatches(ctx context.Context, profileID uuid.UUID, limit int) ([]dto.MatchResponse, error)
	GetMyMatches(ctx context.Context, userID uuid.UUID, limit int) (*dto.MatchListResponse, error)
	// InvalidateMatches drops every cached result. Called whenever a profile changes.
	InvalidateMatches(ctx context.Context)
}

// matchServiceImpl implements the MatchService interface
type matchServiceImpl struct {
	profileRepo  ProfileStore
	cache        cache.Cache
	ttl          time.Duration
	scorer       *matching.Scorer
	defaultLimit int
	logger       zerolog.Logger
}

// NewMatchService creates a new match service instance
func NewMatchService(profileRepo ProfileStore, c cache.Cache, ttl time.Duration, scorer *matching.Scorer, defaultLimit int, logger zerolog.Logger) MatchService {
	if c == nil {
		c = cache.NoopCache{}
	}
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &matchServiceImpl{
		profileRepo:  profileRepo,
		cache:        c,
		ttl:          ttl,
		scorer:       scorer,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

func matchCacheKey(profileID uuid.UUID, limit int) string {
	return fmt.Sprintf("%s%s:%d", matchCachePrefix, profileID, limit)
}

// GetPartnerMatches returns the ranked candidates for profileID, never including itself
func (s *matchServiceImpl) GetPartnerMatches(ctx context.Context, profileID uuid.UUID, limit int) ([]dto.MatchResponse, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	key := matchCacheKey(profileID, limit)
	var cached []dto.MatchResponse
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Str("profileID", profileID.String()).Msg("Match cache read failed")
	}
	if hit {
		return cached, nil
	}

	self, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	pool, err := s.profileRepo.ListAll(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error loading candidate profiles: %w", err)
	}

	candidates := make([]matching.Candidate, 0, len(pool))
	for _, p := range pool {
		candidates = append(candidates, toCandidate(p))
	}

	ranked := s.scorer.Rank(toCandidate(self), candidates, limit)

	scores := make([]float64, len(ranked))
	for i, m := range ranked {
		scores[i] = m.Score
	}
	percents := matching.Percentages(scores)

	out := make([]dto.MatchResponse, len(ranked))
	for i, m := range ranked {
		out[i] = dto.MatchResponse{
			ProfileID:       m.ProfileID,
			Name:            m.Name,
			ProfileType:     m.ProfileType,
			Location:        m.Location,
			Interests:       helpers.NonNil(m.Interests),
			MatchScore:      m.Score,
			MatchPercent:    percents[i],
			SharedInterests: helpers.NonNil(m.SharedInterests),
		}
	}

	if err := s.cache.SetJSON(ctx, key, out, s.ttl); err != nil {
		s.logger.Warn().Err(err).Str("profileID", profileID.String()).Msg("Match cache write failed")
	}
	return out, nil
}

// GetMyMatches returns matches for the caller's profile. A caller without a
// profile gets an empty list flagged with NeedsProfile.
func (s *matchServiceImpl) GetMyMatches(ctx context.Context, userID uuid.UUID, limit int) (*dto.MatchListResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return &dto.MatchListResponse{Matches: []dto.MatchResponse{}, NeedsProfile: true}, nil
		}
		return nil, err
	}

	matches, err := s.GetPartnerMatches(ctx, profile.ID, limit)
	if err != nil {
		return nil, err
	}
	return &dto.MatchListResponse{Matches: matches}, nil
}

func (s *matchServiceImpl) InvalidateMatches(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, matchCachePrefix); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to invalidate match cache")
	}
}

func toCandidate(p *models.Profile) matching.Candidate {
	return matching.Candidate{
		ProfileID:   p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		ProfileType: string(p.ProfileType),
		Location:    helpers.Deref(p.Location),
		Interests:   p.Interests,
	}
}
