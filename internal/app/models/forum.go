package models

import (
	"time"

	"github.com/google/uuid"
)

// ForumTopic is a named subject area. PostCount is aggregated at read time.
type ForumTopic struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" example:"Kinship Care"`
	Description *string   `json:"description,omitempty" db:"description"`
	Category    *string   `json:"category,omitempty" db:"category"`
	PostCount   int       `json:"postCount" db:"post_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// ForumPost is a thread inside a topic. ReplyCount is aggregated at read time.
type ForumPost struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	TopicID    uuid.UUID       `json:"topicId" db:"topic_id"`
	AuthorID   uuid.UUID       `json:"authorId" db:"author_id"`
	Title      string          `json:"title" db:"title"`
	Content    string          `json:"content" db:"content"`
	Tags       []string        `json:"tags" db:"tags"`
	ReplyCount int             `json:"replyCount" db:"reply_count"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" db:"updated_at"`
	Author     *ProfileSummary `json:"author,omitempty"`
}

// ForumReply is a single answer to a post.
type ForumReply struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	PostID    uuid.UUID       `json:"postId" db:"post_id"`
	AuthorID  uuid.UUID       `json:"authorId" db:"author_id"`
	Content   string          `json:"content" db:"content"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	Author    *ProfileSummary `json:"author,omitempty"`
}
