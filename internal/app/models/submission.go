package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a research paper uploaded for admin review.
type Submission struct {
	ID            uuid.UUID        `json:"id" db:"id"`
	AuthorID      uuid.UUID        `json:"authorId" db:"author_id"`
	Title         string           `json:"title" db:"title"`
	Abstract      string           `json:"abstract" db:"abstract"`
	Keywords      []string         `json:"keywords" db:"keywords"`
	FilePath      string           `json:"-" db:"file_path"`
	FileURL       string           `json:"fileUrl" db:"file_url"`
	FileName      string           `json:"fileName" db:"file_name"`
	FileSize      int64            `json:"fileSize" db:"file_size"`
	MimeType      *string          `json:"mimeType,omitempty" db:"mime_type"`
	Status        SubmissionStatus `json:"status" db:"status" example:"pending"`
	ReviewerNotes *string          `json:"reviewerNotes,omitempty" db:"reviewer_notes"`
	ReviewedBy    *uuid.UUID       `json:"reviewedBy,omitempty" db:"reviewed_by"`
	ReviewedAt    *time.Time       `json:"reviewedAt,omitempty" db:"reviewed_at"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
	Author        *ProfileSummary  `json:"author,omitempty"`
}
