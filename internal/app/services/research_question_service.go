package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ResearchQuestionService defines the interface for the collaboration portal
type ResearchQuestionService interface {
	CreateQuestion(ctx context.Context, userID uuid.UUID, req *dto.CreateResearchQuestionRequest) (*models.ResearchQuestion, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*models.ResearchQuestion, error)
	ListQuestions(ctx context.Context, filter dto.ResearchQuestionFilter) (*dto.ResearchQuestionListResponse, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.QuestionStatus) (*models.ResearchQuestion, error)
	DeleteQuestion(ctx context.Context, userID, id uuid.UUID) error
}

// researchQuestionServiceImpl implements the ResearchQuestionService interface
type researchQuestionServiceImpl struct {
	questionRepo ResearchQuestionStore
	profileRepo  ProfileStore
	authz        AdminChecker
}

// NewResearchQuestionService creates a new research question service instance
func NewResearchQuestionService(questionRepo ResearchQuestionStore, profileRepo ProfileStore, authz AdminChecker) ResearchQuestionService {
	return &researchQuestionServiceImpl{
		questionRepo: questionRepo,
		profileRepo:  profileRepo,
		authz:        authz,
	}
}

// CreateQuestion posts an open question authored by the caller's profile
func (s *researchQuestionServiceImpl) CreateQuestion(ctx context.Context, userID uuid.UUID, req *dto.CreateResearchQuestionRequest) (*models.ResearchQuestion, error) {
	author, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	title, description := strings.TrimSpace(req.Title), strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description cannot be empty", apperrors.ErrValidationFailed)
	}

	return s.questionRepo.Create(ctx, &models.ResearchQuestion{
		AuthorID:    author.ID,
		Title:       title,
		Description: description,
		Topics:      models.NormalizeTags(req.Topics),
		Regions:     models.NormalizeTags(req.Regions),
		Populations: models.NormalizeTags(req.Populations),
		Status:      models.QuestionOpen,
	})
}

func (s *researchQuestionServiceImpl) GetQuestion(ctx context.Context, id uuid.UUID) (*models.ResearchQuestion, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions filters by containment: a question passes when it carries
// every requested topic, region and population.
func (s *researchQuestionServiceImpl) ListQuestions(ctx context.Context, filter dto.ResearchQuestionFilter) (*dto.ResearchQuestionListResponse, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, filter.Status)
	}

	questions, total, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*models.ResearchQuestion{}
	}
	return &dto.ResearchQuestionListResponse{
		Questions:  questions,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateStatus moves a question through open, in_progress, completed and
// closed. Authors and admins only.
func (s *researchQuestionServiceImpl) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.QuestionStatus) (*models.ResearchQuestion, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, status)
	}

	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, question.AuthorID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("only the author or an admin can change this question")
	}

	if err := s.questionRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	question.Status = status
	return question, nil
}

func (s *researchQuestionServiceImpl) DeleteQuestion(ctx context.Context, userID, id uuid.UUID) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, question.AuthorID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("only the author or an admin can delete this question")
	}
	return s.questionRepo.Delete(ctx, id)
}
