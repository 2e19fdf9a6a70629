package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
)

// CollaborationController handles connection requests
type CollaborationController struct {
	collaborationService services.CollaborationService
	logger               zerolog.Logger
}

// NewCollaborationController creates a new CollaborationController
func NewCollaborationController(collaborationService services.CollaborationService, logger zerolog.Logger) *CollaborationController {
	return &CollaborationController{
		collaborationService: collaborationService,
		logger:               logger,
	}
}

// SendRequest sends a connection request from the caller's profile
// @Summary Send a connection request
// @Tags collaborations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCollaborationRequest true "Recipient and optional message"
// @Success 201 {object} dto.APIResponse{data=models.Collaboration} "Request sent"
// @Failure 400 {object} dto.ErrorResponse "Validation failed, self request or no profile"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Failure 409 {object} dto.ErrorResponse "A pending or accepted connection already exists"
// @Router /collaborations [post]
func (c *CollaborationController) SendRequest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCollaborationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	collab, err := c.collaborationService.SendRequest(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("collaborationID", collab.ID.String()).
		Str("recipientID", req.RecipientID.String()).
		Msg("Connection request sent")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(collab))
}

// Respond accepts or declines an incoming request
// @Summary Respond to a connection request
// @Description Only the recipient may respond, and only while the request is pending
// @Tags collaborations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collaboration ID"
// @Param request body dto.RespondCollaborationRequest true "accepted or declined"
// @Success 200 {object} dto.APIResponse{data=models.Collaboration} "Resolved request"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 403 {object} dto.ErrorResponse "Not the recipient"
// @Failure 404 {object} dto.ErrorResponse "Collaboration not found"
// @Failure 409 {object} dto.ErrorResponse "Already resolved"
// @Router /collaborations/{id} [patch]
func (c *CollaborationController) Respond(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.RespondCollaborationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	collab, err := c.collaborationService.Respond(ctx.Request.Context(), userID, id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collab))
}

// GetCollaboration returns one request the caller is a party to
// @Summary Get a connection request
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collaboration ID"
// @Success 200 {object} dto.APIResponse{data=models.Collaboration} "Collaboration"
// @Failure 404 {object} dto.ErrorResponse "Collaboration not found"
// @Router /collaborations/{id} [get]
func (c *CollaborationController) GetCollaboration(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	collab, err := c.collaborationService.GetCollaboration(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collab))
}

// ListConnections returns the caller's accepted connections
// @Summary My connections
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ConnectionResponse} "Connections"
// @Failure 400 {object} dto.ErrorResponse "The caller has no profile"
// @Router /collaborations/connections [get]
func (c *CollaborationController) ListConnections(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	connections, err := c.collaborationService.ListConnections(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(connections))
}

// ListIncoming returns pending requests sent to the caller
// @Summary Incoming requests
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Collaboration} "Pending incoming requests"
// @Router /collaborations/incoming [get]
func (c *CollaborationController) ListIncoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	collabs, err := c.collaborationService.ListIncoming(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collabs))
}

// ListOutgoing returns pending requests the caller sent
// @Summary Outgoing requests
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Collaboration} "Pending outgoing requests"
// @Router /collaborations/outgoing [get]
func (c *CollaborationController) ListOutgoing(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	collabs, err := c.collaborationService.ListOutgoing(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(collabs))
}

// ConnectionStatus reports the caller's relation to another profile
// @Summary Connection status
// @Description none, pending_outgoing, pending_incoming or connected
// @Tags collaborations
// @Produce json
// @Security BearerAuth
// @Param profileId path string true "Other profile ID"
// @Success 200 {object} dto.APIResponse{data=dto.ConnectionStatusResponse} "Status"
// @Router /collaborations/status/{profileId} [get]
func (c *CollaborationController) ConnectionStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	profileID, ok := pathID(ctx, "profileId")
	if !ok {
		return
	}

	status, err := c.collaborationService.ConnectionStatus(ctx.Request.Context(), userID, profileID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(status))
}
