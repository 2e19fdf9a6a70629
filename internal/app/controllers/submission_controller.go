package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// SubmissionController handles research submissions
type SubmissionController struct {
	submissionService services.SubmissionService
	maxUploadBytes    int64
	logger            zerolog.Logger
}

// NewSubmissionController creates a new SubmissionController. maxUploadBytes <= 0 disables the size check.
func NewSubmissionController(submissionService services.SubmissionService, maxUploadBytes int64, logger zerolog.Logger) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger,
	}
}

func submissionFilter(ctx *gin.Context) dto.SubmissionFilter {
	page, size := helpers.ParsePaginationParams(ctx)
	return dto.SubmissionFilter{
		Status:   models.SubmissionStatus(ctx.Query("status")),
		Page:     page,
		PageSize: size,
	}
}

// CreateSubmission uploads a research submission
// @Summary Submit research
// @Description Multipart form with title, abstract, keywords and one PDF or Word file
// @Tags submissions
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param abstract formData string true "Abstract"
// @Param keywords formData []string false "Keywords" collectionFormat(multi)
// @Param file formData file true "Document"
// @Success 201 {object} dto.APIResponse{data=models.Submission} "Submission created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed, missing file or no profile"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /submissions [post]
func (c *SubmissionController) CreateSubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateSubmissionRequest
	if err := ctx.ShouldBind(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			file = nil
		} else {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid file upload").WithDetails(err.Error())
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
	}
	if file != nil && c.maxUploadBytes > 0 && file.Size > c.maxUploadBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File too large").
			WithField("file").
			WithDetails(fmt.Sprintf("files are limited to %d MB", c.maxUploadBytes>>20))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	submission, err := c.submissionService.CreateSubmission(ctx.Request.Context(), userID, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("submissionID", submission.ID.String()).
		Int64("fileSize", submission.FileSize).
		Msg("Submission created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(submission))
}

// ListMySubmissions returns the caller's submissions
// @Summary My submissions
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(pending, approved, rejected)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionListResponse} "Submissions"
// @Router /me/submissions [get]
func (c *SubmissionController) ListMySubmissions(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	resp, err := c.submissionService.ListMySubmissions(ctx.Request.Context(), userID, submissionFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetSubmission returns a submission to its author or an admin
// @Summary Get submission
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Submission"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (c *SubmissionController) GetSubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	submission, err := c.submissionService.GetSubmission(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}

// DeleteSubmission removes a submission and its file
// @Summary Delete submission
// @Description Author or admin
// @Tags submissions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [delete]
func (c *SubmissionController) DeleteSubmission(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.submissionService.DeleteSubmission(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Submission deleted"}))
}

// ListSubmissions returns every submission for review
// @Summary List submissions for review
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(pending, approved, rejected)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.SubmissionListResponse} "Submissions"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/submissions [get]
func (c *SubmissionController) ListSubmissions(ctx *gin.Context) {
	resp, err := c.submissionService.ListSubmissions(ctx.Request.Context(), submissionFilter(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ReviewSubmission approves or rejects a pending submission
// @Summary Review submission
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param request body dto.ReviewSubmissionRequest true "Decision and notes"
// @Success 200 {object} dto.APIResponse{data=models.Submission} "Reviewed submission"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Already reviewed"
// @Router /admin/submissions/{id}/review [patch]
func (c *SubmissionController) ReviewSubmission(ctx *gin.Context) {
	reviewerID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReviewSubmissionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	submission, err := c.submissionService.ReviewSubmission(ctx.Request.Context(), reviewerID, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(submission))
}
