package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func newResearcherRequest() *dto.CreateProfileRequest {
	return &dto.CreateProfileRequest{
		ProfileType: models.ProfileTypeResearcher,
		Name:        " Jordan Lee ",
		Email:       "Jordan@StateU.edu",
		Location:    strPtr("Chicago, IL"),
		Interests:   []string{"Child Welfare", "child welfare", " Policy "},
		Details: models.ProfileDetails{
			Researcher: &models.ResearcherDetails{Institution: "State University"},
		},
	}
}

func TestCreateProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	matches := &countingInvalidator{}
	svc := NewProfileService(store, staticAdmins{}, matches, zerolog.Nop())
	userID := uuid.New()

	p, err := svc.CreateProfile(ctx, userID, newResearcherRequest())
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", p.Name)
	assert.Equal(t, "jordan@stateu.edu", p.Email)
	assert.Equal(t, []string{"Child Welfare", "Policy"}, p.Interests)
	assert.Equal(t, 1, matches.n)

	mine, err := svc.GetMyProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, mine.ID)
}

func TestCreateProfileTwiceReturnsExisting(t *testing.T) {
	ctx := context.Background()
	svc := NewProfileService(newMemProfileStore(), staticAdmins{}, &countingInvalidator{}, zerolog.Nop())
	userID := uuid.New()

	first, err := svc.CreateProfile(ctx, userID, newResearcherRequest())
	require.NoError(t, err)

	_, err = svc.CreateProfile(ctx, userID, newResearcherRequest())
	require.ErrorIs(t, err, apperrors.ErrProfileAlreadyExists)

	var custom *apperrors.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, first.ID, custom.Details["existingProfileId"])
	assert.Equal(t, DirectoryRedirect, custom.Details["redirect"])
}

func TestCreateProfileRejectsMismatchedDetails(t *testing.T) {
	svc := NewProfileService(newMemProfileStore(), staticAdmins{}, &countingInvalidator{}, zerolog.Nop())
	req := newResearcherRequest()
	req.Details = models.ProfileDetails{Agency: &models.AgencyDetails{AgencyType: "Non-profit"}}

	_, err := svc.CreateProfile(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	admin := uuid.New()
	matches := &countingInvalidator{}
	svc := NewProfileService(store, staticAdmins{admin: true}, matches, zerolog.Nop())
	owner := uuid.New()

	p, err := svc.CreateProfile(ctx, owner, newResearcherRequest())
	require.NoError(t, err)

	t.Run("type is immutable", func(t *testing.T) {
		agency := models.ProfileTypeAgency
		_, err := svc.UpdateProfile(ctx, owner, p.ID, &dto.UpdateProfileRequest{ProfileType: &agency})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.ErrorIs(t, err, apperrors.ErrProfileTypeImmutable)
	})

	t.Run("same type is accepted", func(t *testing.T) {
		same := models.ProfileTypeResearcher
		updated, err := svc.UpdateProfile(ctx, owner, p.ID, &dto.UpdateProfileRequest{ProfileType: &same, Name: strPtr("Jordan L.")})
		require.NoError(t, err)
		assert.Equal(t, "Jordan L.", updated.Name)
		assert.Equal(t, "Chicago, IL", *updated.Location)
	})

	t.Run("strangers are forbidden", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, uuid.New(), p.ID, &dto.UpdateProfileRequest{Name: strPtr("Hijacked")})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("admins may edit", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, admin, p.ID, &dto.UpdateProfileRequest{Interests: []string{"Housing"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"Housing"}, updated.Interests)
	})
}

func TestDeleteProfile(t *testing.T) {
	ctx := context.Background()
	store := newMemProfileStore()
	svc := NewProfileService(store, staticAdmins{}, &countingInvalidator{}, zerolog.Nop())
	owner := uuid.New()
	p, err := svc.CreateProfile(ctx, owner, newResearcherRequest())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteProfile(ctx, uuid.New(), p.ID), apperrors.ErrPermissionDenied)
	require.NoError(t, svc.DeleteProfile(ctx, owner, p.ID))

	_, err = svc.GetProfile(ctx, p.ID)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestListProfilesRejectsUnknownType(t *testing.T) {
	svc := NewProfileService(newMemProfileStore(), staticAdmins{}, &countingInvalidator{}, zerolog.Nop())
	_, err := svc.ListProfiles(context.Background(), dto.ProfileFilter{ProfileType: "robot"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
