package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ProfileController handles profile related operations
type ProfileController struct {
	profileService services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// CreateProfile creates the caller's profile
// @Summary Create my profile
// @Description Creates the caller's single profile. When one already exists the 409 carries existingProfileId and a redirect.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfileRequest true "Profile"
// @Success 201 {object} dto.APIResponse{data=models.Profile} "Profile created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse{error=dto.ErrorDetail{details=dto.ProfileExistsDetails}} "Profile already exists"
// @Router /profiles [post]
func (c *ProfileController) CreateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	profile, err := c.profileService.CreateProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("profileID", profile.ID.String()).
		Str("profileType", string(profile.ProfileType)).
		Msg("Profile created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(profile))
}

// GetProfile returns a profile by id
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	profile, err := c.profileService.GetProfile(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// GetMyProfile returns the caller's profile
// @Summary Get my profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "The caller has no profile yet"
// @Router /me/profile [get]
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.profileService.GetMyProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// ListProfiles returns a page of profiles
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Param type query string false "Profile type" Enums(student, researcher, agency)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ProfileListResponse} "Profiles"
// @Failure 400 {object} dto.ErrorResponse "Unknown profile type"
// @Router /profiles [get]
func (c *ProfileController) ListProfiles(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.ProfileFilter{
		ProfileType: models.ProfileType(ctx.Query("type")),
		Page:        page,
		PageSize:    size,
	}

	resp, err := c.profileService.ListProfiles(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateProfile partially updates a profile
// @Summary Update profile
// @Description Owner or admin. The profile type cannot change.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Profile} "Updated profile"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	profile, err := c.profileService.UpdateProfile(ctx.Request.Context(), userID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// DeleteProfile removes a profile and everything hanging off it
// @Summary Delete profile
// @Description Owner or admin. Collaborations, posts, replies and questions of the profile are removed too.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the owner"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id} [delete]
func (c *ProfileController) DeleteProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.profileService.DeleteProfile(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("profileID", id.String()).Msg("Profile deleted")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Profile deleted"}))
}
