package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ResearchQuestionController handles the research question portal
type ResearchQuestionController struct {
	questionService services.ResearchQuestionService
}

// NewResearchQuestionController creates a new ResearchQuestionController
func NewResearchQuestionController(questionService services.ResearchQuestionService) *ResearchQuestionController {
	return &ResearchQuestionController{questionService: questionService}
}

// CreateQuestion posts a question
// @Summary Post a research question
// @Tags research-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateResearchQuestionRequest true "Question"
// @Success 201 {object} dto.APIResponse{data=models.ResearchQuestion} "Question created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or no profile"
// @Router /research-questions [post]
func (c *ResearchQuestionController) CreateQuestion(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateResearchQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(question))
}

// ListQuestions returns a page of questions
// @Summary List research questions
// @Description Array filters are containment tests: a question must carry every listed value
// @Tags research-questions
// @Produce json
// @Param topics query []string false "Topics" collectionFormat(csv)
// @Param regions query []string false "Regions" collectionFormat(csv)
// @Param populations query []string false "Populations" collectionFormat(csv)
// @Param status query string false "Status" Enums(open, in_progress, completed, closed)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.ResearchQuestionListResponse} "Questions"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /research-questions [get]
func (c *ResearchQuestionController) ListQuestions(ctx *gin.Context) {
	var query dto.ResearchQuestionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err)
		return
	}

	filter := query.Filter()
	filter.Page, filter.PageSize = helpers.ParsePaginationParams(ctx)

	resp, err := c.questionService.ListQuestions(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetQuestion returns one question
// @Summary Get research question
// @Tags research-questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.APIResponse{data=models.ResearchQuestion} "Question"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /research-questions/{id} [get]
func (c *ResearchQuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	question, err := c.questionService.GetQuestion(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(question))
}

// UpdateStatus moves a question through its lifecycle
// @Summary Update research question status
// @Description Author or admin
// @Tags research-questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param request body dto.UpdateQuestionStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.ResearchQuestion} "Updated question"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /research-questions/{id}/status [patch]
func (c *ResearchQuestionController) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateQuestionStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	question, err := c.questionService.UpdateStatus(ctx.Request.Context(), userID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(question))
}

// DeleteQuestion removes a question
// @Summary Delete research question
// @Description Author or admin
// @Tags research-questions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /research-questions/{id} [delete]
func (c *ResearchQuestionController) DeleteQuestion(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.questionService.DeleteQuestion(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Question deleted"}))
}
