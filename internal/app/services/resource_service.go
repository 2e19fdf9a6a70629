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

// ResourceService defines the interface for the resource library
type ResourceService interface {
	CreateResource(ctx context.Context, req *dto.ResourceRequest) (*models.Resource, error)
	UpdateResource(ctx context.Context, id uuid.UUID, req *dto.ResourceRequest) (*models.Resource, error)
	// viewerID may be uuid.Nil for anonymous readers.
	GetResource(ctx context.Context, viewerID, id uuid.UUID) (*dto.ResourceResponse, error)
	ListResources(ctx context.Context, viewerID uuid.UUID, filter dto.ResourceFilter) (*dto.ResourceListResponse, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]dto.ResourceResponse, error)
	ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (*dto.BookmarkToggleResponse, error)
	RemoveBookmark(ctx context.Context, userID, resourceID uuid.UUID) error
}

// resourceServiceImpl implements the ResourceService interface
type resourceServiceImpl struct {
	resourceRepo ResourceStore
}

// NewResourceService creates a new resource service instance
func NewResourceService(resourceRepo ResourceStore) ResourceService {
	return &resourceServiceImpl{resourceRepo: resourceRepo}
}

func validateResource(res *models.Resource) error {
	res.Title = strings.TrimSpace(res.Title)
	if res.Title == "" {
		return fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	switch res.ResourceType {
	case models.ResourceWorkshop, models.ResourceToolkit, models.ResourceReading:
	default:
		return fmt.Errorf("%w: unknown resource type %q", apperrors.ErrValidationFailed, res.ResourceType)
	}
	switch res.Format {
	case models.FormatPDF, models.FormatVideo, models.FormatWebinar, models.FormatArticle, models.FormatLink:
	default:
		return fmt.Errorf("%w: unknown format %q", apperrors.ErrValidationFailed, res.Format)
	}
	if res.Format == models.FormatLink && res.URL == nil {
		return fmt.Errorf("%w: link resources need a url", apperrors.ErrValidationFailed)
	}
	return nil
}

func (s *resourceServiceImpl) CreateResource(ctx context.Context, req *dto.ResourceRequest) (*models.Resource, error) {
	res := req.ToModel()
	res.Description = helpers.TrimmedOrNil(res.Description)
	res.Category = helpers.TrimmedOrNil(res.Category)
	res.URL = helpers.TrimmedOrNil(res.URL)
	if err := validateResource(res); err != nil {
		return nil, err
	}
	if err := s.resourceRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resourceServiceImpl) UpdateResource(ctx context.Context, id uuid.UUID, req *dto.ResourceRequest) (*models.Resource, error) {
	current, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	res := req.ToModel()
	res.ID = current.ID
	res.CreatedAt = current.CreatedAt
	res.Description = helpers.TrimmedOrNil(res.Description)
	res.Category = helpers.TrimmedOrNil(res.Category)
	res.URL = helpers.TrimmedOrNil(res.URL)
	if err := validateResource(res); err != nil {
		return nil, err
	}
	if err := s.resourceRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *resourceServiceImpl) GetResource(ctx context.Context, viewerID, id uuid.UUID) (*dto.ResourceResponse, error) {
	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookmarked := false
	if viewerID != uuid.Nil {
		ids, err := s.resourceRepo.BookmarkedIDs(ctx, viewerID, []uuid.UUID{id})
		if err != nil {
			return nil, err
		}
		bookmarked = ids[id]
	}
	return &dto.ResourceResponse{Resource: res, Bookmarked: bookmarked}, nil
}

func (s *resourceServiceImpl) ListResources(ctx context.Context, viewerID uuid.UUID, filter dto.ResourceFilter) (*dto.ResourceListResponse, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)

	resources, total, err := s.resourceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	bookmarked := map[uuid.UUID]bool{}
	if viewerID != uuid.Nil && len(resources) > 0 {
		ids := make([]uuid.UUID, len(resources))
		for i, r := range resources {
			ids[i] = r.ID
		}
		if bookmarked, err = s.resourceRepo.BookmarkedIDs(ctx, viewerID, ids); err != nil {
			return nil, err
		}
	}

	out := make([]dto.ResourceResponse, len(resources))
	for i, r := range resources {
		out[i] = dto.ResourceResponse{Resource: r, Bookmarked: bookmarked[r.ID]}
	}
	return &dto.ResourceListResponse{
		Resources:  out,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

func (s *resourceServiceImpl) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]dto.ResourceResponse, error) {
	resources, err := s.resourceRepo.ListBookmarked(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceResponse, len(resources))
	for i, r := range resources {
		out[i] = dto.ResourceResponse{Resource: r, Bookmarked: true}
	}
	return out, nil
}

// ToggleBookmark flips the bookmark and reports the new state. Toggling twice
// restores the original bookmark set.
func (s *resourceServiceImpl) ToggleBookmark(ctx context.Context, userID, resourceID uuid.UUID) (*dto.BookmarkToggleResponse, error) {
	bookmarked, err := s.resourceRepo.ToggleBookmark(ctx, userID, resourceID)
	if err != nil {
		return nil, err
	}
	return &dto.BookmarkToggleResponse{Bookmarked: bookmarked}, nil
}

func (s *resourceServiceImpl) RemoveBookmark(ctx context.Context, userID, resourceID uuid.UUID) error {
	return s.resourceRepo.DeleteBookmark(ctx, userID, resourceID)
}
