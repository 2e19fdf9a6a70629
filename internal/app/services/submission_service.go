package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/filestorage"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

const submissionsDir = "submissions"

var allowedSubmissionExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// SubmissionService defines the interface for research paper submissions
type SubmissionService interface {
	CreateSubmission(ctx context.Context, userID uuid.UUID, req *dto.CreateSubmissionRequest, file *multipart.FileHeader) (*models.Submission, error)
	GetSubmission(ctx context.Context, userID, id uuid.UUID) (*models.Submission, error)
	ListMySubmissions(ctx context.Context, userID uuid.UUID, filter dto.SubmissionFilter) (*dto.SubmissionListResponse, error)
	ListSubmissions(ctx context.Context, filter dto.SubmissionFilter) (*dto.SubmissionListResponse, error)
	ReviewSubmission(ctx context.Context, reviewerID, id uuid.UUID, req *dto.ReviewSubmissionRequest) (*models.Submission, error)
	DeleteSubmission(ctx context.Context, userID, id uuid.UUID) error
}

// submissionServiceImpl implements the SubmissionService interface
type submissionServiceImpl struct {
	submissionRepo SubmissionStore
	profileRepo    ProfileStore
	authz          AdminChecker
	storage        filestorage.FileStorage
	notifier       Notifier
	logger         zerolog.Logger
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(
	submissionRepo SubmissionStore,
	profileRepo ProfileStore,
	authz AdminChecker,
	storage filestorage.FileStorage,
	notifier Notifier,
	logger zerolog.Logger,
) SubmissionService {
	return &submissionServiceImpl{
		submissionRepo: submissionRepo,
		profileRepo:    profileRepo,
		authz:          authz,
		storage:        storage,
		notifier:       notifier,
		logger:         logger,
	}
}

// CreateSubmission stores the file and records a pending submission authored by
// the caller's profile. The file is removed again if the record cannot be saved.
func (s *submissionServiceImpl) CreateSubmission(ctx context.Context, userID uuid.UUID, req *dto.CreateSubmissionRequest, file *multipart.FileHeader) (*models.Submission, error) {
	author, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.ErrFileRequired
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedSubmissionExtensions[ext] {
		return nil, fmt.Errorf("%w: only PDF and Word documents are accepted", apperrors.ErrValidationFailed)
	}

	title, abstract := strings.TrimSpace(req.Title), strings.TrimSpace(req.Abstract)
	if title == "" || abstract == "" {
		return nil, fmt.Errorf("%w: title and abstract cannot be empty", apperrors.ErrValidationFailed)
	}

	stored, err := s.storage.Save(file, submissionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to store submission file: %w", err)
	}

	var mimeType *string
	if stored.MimeType != "" {
		mimeType = &stored.MimeType
	}

	submission, err := s.submissionRepo.Create(ctx, &models.Submission{
		AuthorID: author.ID,
		Title:    title,
		Abstract: abstract,
		Keywords: req.KeywordList(),
		FilePath: stored.Path,
		FileURL:  stored.URL,
		FileName: stored.Filename,
		FileSize: stored.Size,
		MimeType: mimeType,
		Status:   models.SubmissionPending,
	})
	if err != nil {
		if delErr := s.storage.Delete(stored.Path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", stored.Path).Msg("Failed to remove orphaned submission file")
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.SubmissionCreated(ctx, submission, userID)
	}
	return submission, nil
}

// GetSubmission returns a submission to its author or an admin
func (s *submissionServiceImpl) GetSubmission(ctx context.Context, userID, id uuid.UUID) (*models.Submission, error) {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, submission.AuthorID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrSubmissionNotFound
	}
	return submission, nil
}

func (s *submissionServiceImpl) ListMySubmissions(ctx context.Context, userID uuid.UUID, filter dto.SubmissionFilter) (*dto.SubmissionListResponse, error) {
	author, err := requireProfile(ctx, s.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, filter, &author.ID)
}

// ListSubmissions lists every submission for review
func (s *submissionServiceImpl) ListSubmissions(ctx context.Context, filter dto.SubmissionFilter) (*dto.SubmissionListResponse, error) {
	return s.list(ctx, filter, nil)
}

func (s *submissionServiceImpl) list(ctx context.Context, filter dto.SubmissionFilter, authorID *uuid.UUID) (*dto.SubmissionListResponse, error) {
	switch filter.Status {
	case "", models.SubmissionPending, models.SubmissionApproved, models.SubmissionRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, filter.Status)
	}

	submissions, total, err := s.submissionRepo.List(ctx, filter, authorID)
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []*models.Submission{}
	}
	return &dto.SubmissionListResponse{
		Submissions: submissions,
		Pagination:  helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// ReviewSubmission approves or rejects a pending submission. Callers are
// admins; the route enforces it.
func (s *submissionServiceImpl) ReviewSubmission(ctx context.Context, reviewerID, id uuid.UUID, req *dto.ReviewSubmissionRequest) (*models.Submission, error) {
	if req.Status != models.SubmissionApproved && req.Status != models.SubmissionRejected {
		return nil, fmt.Errorf("%w: status must be approved or rejected", apperrors.ErrValidationFailed)
	}

	if err := s.submissionRepo.Review(ctx, id, req.Status, helpers.TrimmedOrNil(req.Notes), reviewerID); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("submissionID", id.String()).
		Str("status", string(req.Status)).
		Msg("Submission reviewed")

	if s.notifier != nil {
		if author, err := s.profileRepo.GetByID(ctx, submission.AuthorID); err == nil {
			s.notifier.SubmissionReviewed(ctx, submission, author.UserID)
		}
	}
	return submission, nil
}

// DeleteSubmission removes the record and its file. Authors and admins only.
func (s *submissionServiceImpl) DeleteSubmission(ctx context.Context, userID, id uuid.UUID) error {
	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	allowed, err := canModifyAuthored(ctx, s.profileRepo, s.authz, userID, submission.AuthorID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("only the author or an admin can delete this submission")
	}

	if err := s.submissionRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.storage.Delete(submission.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("path", submission.FilePath).Msg("Failed to remove submission file")
	}
	return nil
}
