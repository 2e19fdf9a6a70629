package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
)

// AdminController handles the admin dashboard and confirmed deletes
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// DashboardStats returns the dashboard counters
// @Summary Dashboard stats
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.DashboardStats} "Counters"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/stats [get]
func (c *AdminController) DashboardStats(ctx *gin.Context) {
	stats, err := c.adminService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

type deleteFunc func(ctx context.Context, adminID, id uuid.UUID, confirm bool) error

// confirmedDelete binds ?confirm and the id, then runs del
func (c *AdminController) confirmedDelete(ctx *gin.Context, del deleteFunc, message string) {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var query dto.ConfirmQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err)
		return
	}

	if err := del(ctx.Request.Context(), adminID, id, query.Confirm); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: message}))
}

// DeleteProfile removes any profile
// @Summary Delete profile (admin)
// @Description Requires confirm=true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Profile ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Router /admin/profiles/{id} [delete]
func (c *AdminController) DeleteProfile(ctx *gin.Context) {
	c.confirmedDelete(ctx, c.adminService.DeleteProfile, "Profile deleted")
}

// DeleteEvent removes an event and its registrations
// @Summary Delete event
// @Description Requires confirm=true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id} [delete]
func (c *AdminController) DeleteEvent(ctx *gin.Context) {
	c.confirmedDelete(ctx, c.adminService.DeleteEvent, "Event deleted")
}

// DeleteResource removes a resource and its bookmarks
// @Summary Delete resource
// @Description Requires confirm=true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /admin/resources/{id} [delete]
func (c *AdminController) DeleteResource(ctx *gin.Context) {
	c.confirmedDelete(ctx, c.adminService.DeleteResource, "Resource deleted")
}

// DeleteTopic removes a forum topic with its posts
// @Summary Delete forum topic
// @Description Requires confirm=true
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param confirm query bool true "Must be true"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Confirmation required"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/forum/topics/{id} [delete]
func (c *AdminController) DeleteTopic(ctx *gin.Context) {
	c.confirmedDelete(ctx, c.adminService.DeleteTopic, "Topic deleted")
}
