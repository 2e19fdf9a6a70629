package dto

import (
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
)

// CreateProfileRequest creates the caller's single profile.
type CreateProfileRequest struct {
	ProfileType models.ProfileType    `json:"profileType" binding:"required,oneof=student researcher agency" example:"researcher"`
	Name        string                `json:"name" binding:"required,min=2,max=255" example:"Jordan Lee"`
	Email       string                `json:"email" binding:"required,email" example:"jordan@stateu.edu"`
	Location    *string               `json:"location" binding:"omitempty,max=255" example:"Chicago, IL, USA"`
	Bio         *string               `json:"bio" binding:"omitempty,min=10,max=2000"`
	AvatarURL   *string               `json:"avatarUrl" binding:"omitempty,url"`
	Interests   []string              `json:"interests" binding:"omitempty,max=50,dive,max=100"`
	Details     models.ProfileDetails `json:"details"`
}

// UpdateProfileRequest is a partial update; nil fields are left unchanged.
// ProfileType may be sent but must equal the stored type.
type UpdateProfileRequest struct {
	ProfileType *models.ProfileType    `json:"profileType" binding:"omitempty,oneof=student researcher agency"`
	Name        *string                `json:"name" binding:"omitempty,min=2,max=255"`
	Email       *string                `json:"email" binding:"omitempty,email"`
	Location    *string                `json:"location" binding:"omitempty,max=255"`
	Bio         *string                `json:"bio" binding:"omitempty,min=10,max=2000"`
	AvatarURL   *string                `json:"avatarUrl" binding:"omitempty,url"`
	Interests   []string               `json:"interests" binding:"omitempty,max=50,dive,max=100"`
	Details     *models.ProfileDetails `json:"details"`
}

// ProfileListResponse is a page of profiles.
type ProfileListResponse struct {
	Profiles   []*models.Profile `json:"profiles"`
	Pagination PaginationInfo    `json:"pagination"`
}

// ProfileExistsDetails accompanies the 409 returned when a user already has a
// profile, telling the client where to go instead.
type ProfileExistsDetails struct {
	ExistingProfileID uuid.UUID `json:"existingProfileId"`
	Redirect          string    `json:"redirect" example:"/directory"`
}

// ProfileFilter holds list query parameters.
type ProfileFilter struct {
	ProfileType models.ProfileType
	Page        int
	PageSize    int
}
