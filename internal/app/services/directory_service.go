package services

import (
	"context"
	"fmt"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/directory"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// DirectoryService serves the unified profile directory
type DirectoryService interface {
	Search(ctx context.Context, criteria directory.Criteria) (*dto.DirectoryResponse, error)
}

// directoryServiceImpl implements the DirectoryService interface
type directoryServiceImpl struct {
	profileRepo ProfileStore
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(profileRepo ProfileStore) DirectoryService {
	return &directoryServiceImpl{profileRepo: profileRepo}
}

// Search loads the profiles of the requested type, filters them in memory and
// returns the facets of the unfiltered set so pickers stay stable while filtering.
func (s *directoryServiceImpl) Search(ctx context.Context, criteria directory.Criteria) (*dto.DirectoryResponse, error) {
	var profileType models.ProfileType
	if criteria.ProfileType != "" && criteria.ProfileType != directory.TypeAll {
		profileType = models.ProfileType(criteria.ProfileType)
		if !profileType.Valid() {
			return nil, fmt.Errorf("%w: unknown profile type %q", apperrors.ErrValidationFailed, criteria.ProfileType)
		}
	}

	profiles, err := s.profileRepo.ListAll(ctx, profileType)
	if err != nil {
		return nil, err
	}

	entries := make([]directory.Entry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, toDirectoryEntry(p))
	}

	results := directory.Filter(entries, criteria)
	return &dto.DirectoryResponse{
		Results:  results,
		Count:    len(results),
		Facets:   directory.BuildFacets(entries),
		Filtered: criteria.Active(),
	}, nil
}

func toDirectoryEntry(p *models.Profile) directory.Entry {
	return directory.Entry{
		ID:           p.ID,
		Type:         string(p.ProfileType),
		Name:         p.Name,
		Organization: p.Organization(),
		Title:        p.Title(),
		Description:  helpers.Deref(p.Bio),
		Location:     helpers.Deref(p.Location),
		Tags:         helpers.NonNil(p.Tags()),
		AvatarURL:    helpers.Deref(p.AvatarURL),
	}
}
