package dto

import (
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
)

// RegisterRequest creates an account. Profiles are created separately.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jordan@stateu.edu"`
	Password string `json:"password" binding:"required,password" example:"Passw0rd!"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// MeResponse is the session view: the account, its admin flag and its profile if any.
type MeResponse struct {
	User       UserResponse    `json:"user"`
	IsAdmin    bool            `json:"isAdmin"`
	HasProfile bool            `json:"hasProfile"`
	Profile    *models.Profile `json:"profile,omitempty"`
}

// LogoutRequest ends one session, or every session when RefreshToken is empty
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}
