package models

import (
	"time"

	"github.com/google/uuid"
)

// ResearchQuestion is an open question posted to the collaboration portal.
type ResearchQuestion struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	AuthorID    uuid.UUID       `json:"authorId" db:"author_id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Topics      []string        `json:"topics" db:"topics"`
	Regions     []string        `json:"regions" db:"regions"`
	Populations []string        `json:"populations" db:"populations"`
	Status      QuestionStatus  `json:"status" db:"status" example:"open"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
	Author      *ProfileSummary `json:"author,omitempty"`
}
