package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
)

// DirectoryController serves the filterable directory
type DirectoryController struct {
	directoryService services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService services.DirectoryService) *DirectoryController {
	return &DirectoryController{directoryService: directoryService}
}

// Search filters the unified directory
// @Summary Search the directory
// @Description Free-text, tag and location filters over all profile types. Facets describe the unfiltered set.
// @Tags directory
// @Produce json
// @Param q query string false "Free-text query"
// @Param type query string false "Profile type" Enums(all, student, researcher, agency)
// @Param tags query []string false "Tags, any tag may match" collectionFormat(csv)
// @Param locations query []string false "Exact locations, any may match" collectionFormat(multi)
// @Param location query string false "Location keyword"
// @Param sort query string false "Sort order" Enums(name, name-desc, organization, location)
// @Success 200 {object} dto.APIResponse{data=dto.DirectoryResponse} "Directory results"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /directory [get]
func (c *DirectoryController) Search(ctx *gin.Context) {
	var query dto.DirectoryQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err)
		return
	}
	c.search(ctx, query)
}

// SearchType serves the per-type directory pages, e.g. /directory/agencies
// @Summary Search one profile type
// @Tags directory
// @Produce json
// @Param q query string false "Free-text query"
// @Param tags query []string false "Tags, any tag may match" collectionFormat(csv)
// @Param locations query []string false "Exact locations" collectionFormat(multi)
// @Param location query string false "Location keyword"
// @Param sort query string false "Sort order" Enums(name, name-desc, organization, location)
// @Success 200 {object} dto.APIResponse{data=dto.DirectoryResponse} "Directory results"
// @Router /directory/students [get]
// @Router /directory/researchers [get]
// @Router /directory/agencies [get]
func (c *DirectoryController) SearchType(profileType models.ProfileType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var query dto.DirectoryQuery
		if err := ctx.ShouldBindQuery(&query); err != nil {
			badRequest(ctx, err)
			return
		}
		query.Type = string(profileType)
		c.search(ctx, query)
	}
}

func (c *DirectoryController) search(ctx *gin.Context, query dto.DirectoryQuery) {
	resp, err := c.directoryService.Search(ctx.Request.Context(), query.Criteria())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
