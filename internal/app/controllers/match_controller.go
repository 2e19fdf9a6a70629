package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
)

// MatchController serves partner matches
type MatchController struct {
	matchService services.MatchService
}

// NewMatchController creates a new MatchController
func NewMatchController(matchService services.MatchService) *MatchController {
	return &MatchController{matchService: matchService}
}

// limitParam reads ?limit, where zero means the service default
func limitParam(ctx *gin.Context) int {
	limit, err := strconv.Atoi(ctx.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// GetProfileMatches ranks partner candidates for a profile
// @Summary Partner matches of a profile
// @Description Profiles ranked by shared interests, same location and interest overlap, best first
// @Tags matches
// @Produce json
// @Param id path string true "Profile ID"
// @Param limit query int false "Maximum number of matches"
// @Success 200 {object} dto.APIResponse{data=[]dto.MatchResponse} "Matches"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /profiles/{id}/matches [get]
func (c *MatchController) GetProfileMatches(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	matches, err := c.matchService.GetPartnerMatches(ctx.Request.Context(), id, limitParam(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(matches))
}

// GetMyMatches ranks partner candidates for the caller
// @Summary My partner matches
// @Description Empty with needsProfile=true when the caller has no profile yet
// @Tags matches
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of matches"
// @Success 200 {object} dto.APIResponse{data=dto.MatchListResponse} "Matches"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /me/matches [get]
func (c *MatchController) GetMyMatches(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.matchService.GetMyMatches(ctx.Request.Context(), userID, limitParam(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
