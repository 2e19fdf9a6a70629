package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// DirectoryRedirect is where a user with an existing profile is sent instead
// of the create flow.
const DirectoryRedirect = "/directory"

// ProfileService defines the interface for profile operations
type ProfileService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	ListProfiles(ctx context.Context, filter dto.ProfileFilter) (*dto.ProfileListResponse, error)
	UpdateProfile(ctx context.Context, callerID, profileID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, callerID, profileID uuid.UUID) error
}

type matchInvalidator interface {
	InvalidateMatches(ctx context.Context)
}

// profileServiceImpl implements the ProfileService interface
type profileServiceImpl struct {
	profileRepo ProfileStore
	authz       AdminChecker
	matches     matchInvalidator
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo ProfileStore, authz AdminChecker, matches matchInvalidator, logger zerolog.Logger) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		authz:       authz,
		matches:     matches,
		logger:      logger,
	}
}

// validateProfile checks the fields shared by create and update
func (s *profileServiceImpl) validateProfile(p *models.Profile) error {
	if !p.ProfileType.Valid() {
		return fmt.Errorf("%w: profileType must be one of student, researcher, agency", apperrors.ErrValidationFailed)
	}
	if len(strings.TrimSpace(p.Name)) < 2 {
		return fmt.Errorf("%w: name must be at least 2 characters", apperrors.ErrValidationFailed)
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return fmt.Errorf("%w: email must be a valid email address", apperrors.ErrValidationFailed)
	}
	if p.Bio != nil && len([]rune(*p.Bio)) < 10 {
		return fmt.Errorf("%w: bio must be at least 10 characters", apperrors.ErrValidationFailed)
	}
	if err := p.Details.Validate(p.ProfileType); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}
	return nil
}

// profileExistsError is the 409 pointing the client at the existing profile
func profileExistsError(existing *models.Profile) error {
	return apperrors.NewCustomError(apperrors.ErrProfileAlreadyExists, apperrors.ErrProfileAlreadyExists.Error()).
		WithDetails(map[string]interface{}{
			"existingProfileId": existing.ID,
			"redirect":          DirectoryRedirect,
		})
}

// CreateProfile creates the caller's profile. A user owns at most one.
func (s *profileServiceImpl) CreateProfile(ctx context.Context, userID uuid.UUID, req *dto.CreateProfileRequest) (*models.Profile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil {
		return nil, profileExistsError(existing)
	}
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		return nil, err
	}

	profile := &models.Profile{
		UserID:      userID,
		ProfileType: req.ProfileType,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Location:    helpers.TrimmedOrNil(req.Location),
		Bio:         helpers.TrimmedOrNil(req.Bio),
		AvatarURL:   helpers.TrimmedOrNil(req.AvatarURL),
		Interests:   models.NormalizeTags(req.Interests),
		Details:     req.Details,
	}
	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, apperrors.ErrProfileAlreadyExists) {
			// Lost a race with a concurrent create for the same user.
			if existing, getErr := s.profileRepo.GetByUserID(ctx, userID); getErr == nil {
				return nil, profileExistsError(existing)
			}
		}
		return nil, err
	}

	s.logger.Info().
		Str("profileID", profile.ID.String()).
		Str("profileType", string(profile.ProfileType)).
		Msg("Profile created")
	s.matches.InvalidateMatches(ctx)
	return profile, nil
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.profileRepo.GetByID(ctx, id)
}

func (s *profileServiceImpl) GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListProfiles returns a page of profiles, optionally of one type
func (s *profileServiceImpl) ListProfiles(ctx context.Context, filter dto.ProfileFilter) (*dto.ProfileListResponse, error) {
	if filter.ProfileType != "" && !filter.ProfileType.Valid() {
		return nil, fmt.Errorf("%w: unknown profile type %q", apperrors.ErrValidationFailed, filter.ProfileType)
	}

	profiles, total, err := s.profileRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []*models.Profile{}
	}

	return &dto.ProfileListResponse{
		Profiles:   profiles,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, filter.PageSize),
	}, nil
}

// UpdateProfile applies a partial update. Only the owner or an admin may
// update, and the profile type never changes.
func (s *profileServiceImpl) UpdateProfile(ctx context.Context, callerID, profileID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	allowed, err := canModify(ctx, s.authz, callerID, profile.UserID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.NewForbiddenError("only the owner or an admin can edit this profile")
	}

	if req.ProfileType != nil && *req.ProfileType != profile.ProfileType {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationFailed, apperrors.ErrProfileTypeImmutable)
	}

	if req.Name != nil {
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		profile.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Location != nil {
		profile.Location = helpers.TrimmedOrNil(req.Location)
	}
	if req.Bio != nil {
		profile.Bio = helpers.TrimmedOrNil(req.Bio)
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = helpers.TrimmedOrNil(req.AvatarURL)
	}
	if req.Interests != nil {
		profile.Interests = models.NormalizeTags(req.Interests)
	}
	if req.Details != nil {
		profile.Details = *req.Details
	}

	if err := s.validateProfile(profile); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.matches.InvalidateMatches(ctx)
	return profile, nil
}

// DeleteProfile removes a profile. Collaborations, posts, replies and questions
// of the profile are removed by cascading foreign keys.
func (s *profileServiceImpl) DeleteProfile(ctx context.Context, callerID, profileID uuid.UUID) error {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}

	allowed, err := canModify(ctx, s.authz, callerID, profile.UserID)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.NewForbiddenError("only the owner or an admin can delete this profile")
	}

	if err := s.profileRepo.Delete(ctx, profileID); err != nil {
		return err
	}

	s.logger.Info().
		Str("profileID", profileID.String()).
		Str("deletedBy", callerID.String()).
		Msg("Profile deleted")
	s.matches.InvalidateMatches(ctx)
	return nil
}
