package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// ForumController handles topics, posts and replies
type ForumController struct {
	forumService services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService) *ForumController {
	return &ForumController{forumService: forumService}
}

// ListTopics returns every topic with its post count
// @Summary List forum topics
// @Tags forum
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ForumTopic} "Topics"
// @Router /forum/topics [get]
func (c *ForumController) ListTopics(ctx *gin.Context) {
	topics, err := c.forumService.ListTopics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(topics))
}

// GetTopic returns one topic
// @Summary Get forum topic
// @Tags forum
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {object} dto.APIResponse{data=models.ForumTopic} "Topic"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /forum/topics/{id} [get]
func (c *ForumController) GetTopic(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	topic, err := c.forumService.GetTopic(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(topic))
}

// CreateTopic adds a topic
// @Summary Create forum topic
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTopicRequest true "Topic"
// @Success 201 {object} dto.APIResponse{data=models.ForumTopic} "Topic created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/forum/topics [post]
func (c *ForumController) CreateTopic(ctx *gin.Context) {
	var req dto.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	topic, err := c.forumService.CreateTopic(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(topic))
}

// UpdateTopic replaces a topic's editable fields
// @Summary Update forum topic
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param request body dto.UpdateTopicRequest true "Topic"
// @Success 200 {object} dto.APIResponse{data=models.ForumTopic} "Updated topic"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/forum/topics/{id} [put]
func (c *ForumController) UpdateTopic(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	topic, err := c.forumService.UpdateTopic(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(topic))
}

// ListPosts returns a page of posts, newest first
// @Summary List forum posts
// @Tags forum
// @Produce json
// @Param topicId query string false "Topic ID"
// @Param tag query string false "Tag"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.ForumPost}} "Posts"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /forum/posts [get]
func (c *ForumController) ListPosts(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := dto.PostFilter{
		Tag:      ctx.Query("tag"),
		Page:     page,
		PageSize: size,
	}

	topicParam := ctx.Param("id")
	if topicParam == "" {
		topicParam = ctx.Query("topicId")
	}
	if topicParam != "" {
		topicID, err := uuid.Parse(topicParam)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid ID format").WithField("topicId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.TopicID = &topicID
	}

	resp, err := c.forumService.ListPosts(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetPost returns a post with its replies
// @Summary Get forum post
// @Tags forum
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.PostDetailResponse} "Post and replies, oldest reply first"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /forum/posts/{id} [get]
func (c *ForumController) GetPost(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.forumService.GetPost(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreatePost starts a thread in a topic
// @Summary Create forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Topic ID"
// @Param request body dto.CreatePostRequest true "Post"
// @Success 201 {object} dto.APIResponse{data=models.ForumPost} "Post created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or no profile"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /forum/topics/{id}/posts [post]
func (c *ForumController) CreatePost(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	topicID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	post, err := c.forumService.CreatePost(ctx.Request.Context(), userID, topicID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(post))
}

// DeletePost removes a post and its replies
// @Summary Delete forum post
// @Description Author or admin
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /forum/posts/{id} [delete]
func (c *ForumController) DeletePost(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.forumService.DeletePost(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Post deleted"}))
}

// CreateReply answers a post
// @Summary Reply to a forum post
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body dto.CreateReplyRequest true "Reply"
// @Success 201 {object} dto.APIResponse{data=models.ForumReply} "Reply created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed or no profile"
// @Failure 404 {object} dto.ErrorResponse "Post not found"
// @Router /forum/posts/{id}/replies [post]
func (c *ForumController) CreateReply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	postID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	reply, err := c.forumService.CreateReply(ctx.Request.Context(), userID, postID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(reply))
}

// DeleteReply removes a reply
// @Summary Delete forum reply
// @Description Author or admin
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reply ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the author"
// @Failure 404 {object} dto.ErrorResponse "Reply not found"
// @Router /forum/replies/{id} [delete]
func (c *ForumController) DeleteReply(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.forumService.DeleteReply(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Reply deleted"}))
}
