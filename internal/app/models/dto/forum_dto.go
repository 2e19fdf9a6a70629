package dto

import (
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
)

// CreateTopicRequest creates a forum topic (admin).
type CreateTopicRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
}

// UpdateTopicRequest replaces the editable topic fields (admin).
type UpdateTopicRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Category    *string `json:"category" binding:"omitempty,max=100"`
}

// CreatePostRequest starts a thread in a topic.
type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required,min=3,max=255"`
	Content string   `json:"content" binding:"required,min=1,max=20000"`
	Tags    []string `json:"tags" binding:"omitempty,max=20,dive,max=50"`
}

// CreateReplyRequest answers a post.
type CreateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}

// PostDetailResponse is a post with its replies, oldest first.
type PostDetailResponse struct {
	Post    *models.ForumPost    `json:"post"`
	Replies []*models.ForumReply `json:"replies"`
}

// PostFilter narrows a post listing.
type PostFilter struct {
	TopicID  *uuid.UUID
	Tag      string
	Page     int
	PageSize int
}
