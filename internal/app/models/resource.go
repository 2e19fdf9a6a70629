package models

import (
	"time"

	"github.com/google/uuid"
)

// Resource is a learning asset in the library.
type Resource struct {
	ID           uuid.UUID      `json:"id" db:"id"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description,omitempty" db:"description"`
	ResourceType ResourceType   `json:"resourceType" db:"resource_type" example:"toolkit"`
	Format       ResourceFormat `json:"format" db:"format" example:"pdf"`
	Category     *string        `json:"category,omitempty" db:"category"`
	URL          *string        `json:"url,omitempty" db:"url"`
	Tags         []string       `json:"tags" db:"tags"`
	CreatedAt    time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time      `json:"updatedAt" db:"updated_at"`
}

// Bookmark joins a user and a saved resource.
type Bookmark struct {
	UserID     uuid.UUID `json:"userId" db:"user_id"`
	ResourceID uuid.UUID `json:"resourceId" db:"resource_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
