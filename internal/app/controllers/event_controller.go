package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models/dto"
	"github.com/impactlink/impactlink/internal/app/services"
	"github.com/impactlink/impactlink/internal/middleware"
	"github.com/impactlink/impactlink/internal/pkg/helpers"
)

// EventController handles events and seat registration
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// ListEvents returns a page of events
// @Summary List events
// @Description Filters combine: month selects a calendar month, from and to bound the start date, upcoming hides past starts
// @Tags events
// @Produce json
// @Param type query string false "Event type"
// @Param from query string false "Earliest start (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Latest start (YYYY-MM-DD inclusive, or RFC 3339)"
// @Param month query string false "Month (YYYY-MM)"
// @Param upcoming query bool false "Only events that have not started"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse} "Events"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Router /events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	var query dto.EventQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		badRequest(ctx, err)
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	resp, err := c.eventService.ListEvents(ctx.Request.Context(), middleware.ViewerID(ctx), query, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetEvent returns one event with registration state
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Event"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.eventService.GetEvent(ctx.Request.Context(), middleware.ViewerID(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListMyEvents returns the events the caller is registered for
// @Summary My events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EventResponse} "Events"
// @Router /me/events [get]
func (c *EventController) ListMyEvents(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.ListMyEvents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// Register claims a seat
// @Summary Register for an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} dto.APIResponse{data=models.EventRegistration} "Registered"
// @Failure 400 {object} dto.ErrorResponse "Registration Closed or Event is full"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	reg, err := c.eventService.Register(ctx.Request.Context(), userID, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(reg))
}

// CancelRegistration releases the caller's seat
// @Summary Cancel event registration
// @Description Allowed until the event starts
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration cancelled"
// @Failure 400 {object} dto.ErrorResponse "Event already started"
// @Failure 404 {object} dto.ErrorResponse "Event not found or not registered"
// @Router /events/{id}/register [delete]
func (c *EventController) CancelRegistration(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.eventService.CancelRegistration(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuccessResponse{Message: "Registration cancelled"}))
}

// CreateEvent schedules an event
// @Summary Create event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventRequest true "Event"
// @Success 201 {object} dto.APIResponse{data=dto.EventResponse} "Event created"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	resp, err := c.eventService.CreateEvent(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("eventID", resp.ID.String()).Msg("Event created")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}

// UpdateEvent replaces an event's editable fields
// @Summary Update event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.EventRequest true "Event"
// @Success 200 {object} dto.APIResponse{data=dto.EventResponse} "Updated event"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	resp, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// ListRegistrations returns an event's attendees
// @Summary List event registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.EventRegistration} "Registrations"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /admin/events/{id}/registrations [get]
func (c *EventController) ListRegistrations(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	regs, err := c.eventService.ListRegistrations(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(regs))
}
