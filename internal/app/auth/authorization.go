package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/cache"
	"github.com/impactlink/impactlink/internal/pkg/logger"
)

// RoleStore looks up and grants account roles
type RoleStore interface {
	HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error)
	GrantRole(ctx context.Context, userID uuid.UUID, role models.Role) error
}

// AuthorizationService answers role checks. Results are cached so the admin
// middleware does not hit the database on every request.
type AuthorizationService struct {
	roles RoleStore
	cache cache.Cache
	ttl   time.Duration
}

// NewAuthorizationService creates a new AuthorizationService. A nil cache disables caching.
func NewAuthorizationService(roles RoleStore, c cache.Cache, ttl time.Duration) *AuthorizationService {
	if c == nil {
		c = cache.NoopCache{}
	}
	return &AuthorizationService{roles: roles, cache: c, ttl: ttl}
}

func roleCacheKey(userID uuid.UUID, role models.Role) string {
	return fmt.Sprintf("roles:%s:%s", userID, role)
}

// HasRole checks if the user holds role
func (s *AuthorizationService) HasRole(ctx context.Context, userID uuid.UUID, role models.Role) (bool, error) {
	key := roleCacheKey(userID, role)

	var cached bool
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		logger.Warn().Err(err).Str("userID", userID.String()).Msg("Role cache read failed")
	}
	if hit {
		return cached, nil
	}

	has, err := s.roles.HasRole(ctx, userID, role)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID.String()).Str("role", string(role)).Msg("Error checking role")
		return false, err
	}

	if err := s.cache.SetJSON(ctx, key, has, s.ttl); err != nil {
		logger.Warn().Err(err).Str("userID", userID.String()).Msg("Role cache write failed")
	}
	return has, nil
}

// IsAdmin checks if the user is an admin
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.HasRole(ctx, userID, models.RoleAdmin)
}

// ValidateAdmin validates if the user is an admin or returns an error
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, userID uuid.UUID) error {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.NewForbiddenError("admin role required")
	}
	return nil
}

// GrantAdmin gives userID the admin role and drops the cached answer
func (s *AuthorizationService) GrantAdmin(ctx context.Context, userID uuid.UUID) error {
	if err := s.roles.GrantRole(ctx, userID, models.RoleAdmin); err != nil {
		return err
	}
	if err := s.cache.Delete(ctx, roleCacheKey(userID, models.RoleAdmin)); err != nil {
		logger.Warn().Err(err).Str("userID", userID.String()).Msg("Failed to invalidate role cache")
	}
	return nil
}
