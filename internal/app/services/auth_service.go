package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/auth"
	"github.com/impactlink/impactlink/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo    UserStore
	tokenRepo   TokenStore
	profileRepo ProfileStore
	authz       AdminChecker
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo UserStore,
	tokenRepo TokenStore,
	profileRepo ProfileStore,
	authz AdminChecker,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		authz:       authz,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email must be a valid email address", apperrors.ErrValidationFailed)
	}
	return nil
}

// validatePassword checks if password meets requirements
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.ValidPassword(password) {
		return fmt.Errorf("%w: password must be at least %d characters and contain a letter and a digit",
			apperrors.ErrValidationFailed, validation.PasswordMinLength)
	}
	return nil
}

// Register creates an account and signs it in
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("userID", user.ID.String()).Msg("User registered")
	return s.generateAuthResponse(ctx, user)
}

// Login authenticates a user
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Str("userID", user.ID.String()).Msg("Could not record last login")
	}

	return s.generateAuthResponse(ctx, user)
}

// RefreshToken rotates a refresh token: the old one is revoked and a new pair issued
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	stored, err := s.tokenRepo.GetToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke old token: %w", err)
	}

	return s.generateAuthResponse(ctx, user)
}

// Logout revokes refreshToken, or every session of the user when no token is given
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
	}

	stored, err := s.tokenRepo.GetToken(ctx, refreshToken)
	if err != nil {
		// An expired or already revoked token means the session is over anyway.
		if apperrors.Is(err, apperrors.ErrTokenExpired, apperrors.ErrTokenRevoked) {
			return nil
		}
		return err
	}
	if stored.UserID != userID {
		return apperrors.ErrTokenInvalid
	}
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// Me returns the session view of userID
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.MeResponse{
		User: dto.UserResponse{ID: user.ID, Email: user.Email},
	}

	if s.authz != nil {
		isAdmin, err := s.authz.IsAdmin(ctx, userID)
		if err != nil {
			return nil, err
		}
		resp.IsAdmin = isAdmin
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		resp.HasProfile = true
		resp.Profile = profile
	case !errors.Is(err, apperrors.ErrProfileNotFound):
		return nil, err
	}

	return resp, nil
}

// generateAuthResponse issues a token pair and stores the refresh token
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, pair.RefreshToken, user.ID, pair.RefreshExpiresAt); err != nil {
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           pair.AccessToken,
			TokenType:             "Bearer",
			ExpiresIn:             pair.ExpiresIn,
			RefreshToken:          pair.RefreshToken,
			RefreshTokenExpiresIn: pair.RefreshExpiresIn,
		},
		User: dto.UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}
