package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated account. Profiles hang off users one to one.
type User struct {
	ID           uuid.UUID  `json:"id" db:"id" example:"6f1c2b9e-8d4a-4f51-9d2e-3c6a1b7e0f42"`
	Email        string     `json:"email" db:"email" example:"jordan@stateu.edu"`
	PasswordHash string     `json:"-" db:"password_hash"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// RefreshToken is an opaque, revocable session token.
type RefreshToken struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Revoked   bool      `db:"revoked"`
	CreatedAt time.Time `db:"created_at"`
}
