package dto

import (
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
)

// CreateResearchQuestionRequest posts a question to the portal.
type CreateResearchQuestionRequest struct {
	Title       string   `json:"title" binding:"required,min=5,max=255"`
	Description string   `json:"description" binding:"required,min=10,max=10000"`
	Topics      []string `json:"topics" binding:"omitempty,max=20,dive,max=100"`
	Regions     []string `json:"regions" binding:"omitempty,max=20,dive,max=100"`
	Populations []string `json:"populations" binding:"omitempty,max=20,dive,max=100"`
}

// UpdateQuestionStatusRequest moves a question through its lifecycle.
type UpdateQuestionStatusRequest struct {
	Status models.QuestionStatus `json:"status" binding:"required,oneof=open in_progress completed closed"`
}

// ResearchQuestionQuery binds list filters. Each array filter is a containment
// test: the question must carry every listed value.
type ResearchQuestionQuery struct {
	Topics      []string `form:"topics"`
	Regions     []string `form:"regions"`
	Populations []string `form:"populations"`
	Status      string   `form:"status" binding:"omitempty,oneof=open in_progress completed closed"`
}

// ResearchQuestionFilter is the normalized filter passed to the store.
type ResearchQuestionFilter struct {
	Topics      []string
	Regions     []string
	Populations []string
	Status      models.QuestionStatus
	AuthorID    *uuid.UUID
	Page        int
	PageSize    int
}

// Filter normalizes the query.
func (q ResearchQuestionQuery) Filter() ResearchQuestionFilter {
	return ResearchQuestionFilter{
		Topics:      splitCSV(q.Topics),
		Regions:     splitCSV(q.Regions),
		Populations: splitCSV(q.Populations),
		Status:      models.QuestionStatus(q.Status),
	}
}

// ResearchQuestionListResponse is a page of questions.
type ResearchQuestionListResponse struct {
	Questions  []*models.ResearchQuestion `json:"questions"`
	Pagination PaginationInfo             `json:"pagination"`
}
