package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ResourceController handles the resource library and bookmarks
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// ListResources returns a page of library resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Param type query string false "Resource type" Enums(workshop, toolkit, reading)
// @Param format query string false "Format" Enums(pdf, video, webinar, article, link)
// @Param category query string false "Category"
// @Param q query string false "Text search over title and description"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse} "Resources"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	var query dto.ResourceQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.ResourceFilter{
		ResourceType: models.ResourceType(query.Type),
		Format:       models.ResourceFormat(query.Format),
		Category:     query.Category,
		Search:       query.Search,
		Page:         page,
		PageSize:     size,
	}

	resp, err := c.resourceService.ListResources(ctx.Request.Context(), middleware.ViewerID(ctx), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetResource returns one resource
// @Summary Get resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.resourceService.GetResource(ctx.Request.Context(), middleware.ViewerID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListBookmarks returns the caller's bookmarked resources
// @Summary My bookmarks
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ResourceResponse} "Bookmarked resources"
// @Router /me/bookmarks [get]
func (c *ResourceController) ListBookmarks(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resources, err := c.resourceService.ListBookmarks(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resources))
}

// ToggleBookmark flips the caller's bookmark on a resource
// @Summary Toggle bookmark
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.BookmarkToggleResponse} "New bookmark state"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id}/bookmark [post]
func (c *ResourceController) ToggleBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.resourceService.ToggleBookmark(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// RemoveBookmark deletes the caller's bookmark
// @Summary Remove bookmark
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Bookmark removed"
// @Failure 404 {object} dto.ErrorResponse "Bookmark not found"
// @Router /resources/{id}/bookmark [delete]
func (c *ResourceController) RemoveBookmark(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.resourceService.RemoveBookmark(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Bookmark removed"}))
}

// CreateResource adds a library resource
// @Summary Create resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResourceRequest true "Resource"
// @Success 201 {object} dto.APIResponse{data=models.Resource} "Resource created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	res, err := c.resourceService.CreateResource(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(res))
}

// UpdateResource replaces a resource's editable fields
// @Summary Update resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body dto.ResourceRequest true "Resource"
// @Success 200 {object} dto.APIResponse{data=models.Resource} "Updated resource"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /admin/resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	res, err := c.resourceService.UpdateResource(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(res))
}
