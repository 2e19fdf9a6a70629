package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SocketServer attaches an authenticated connection to the live notification feed
type SocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error
}

// NotificationController upgrades clients to the notification websocket
type NotificationController struct {
	sockets SocketServer
	logger  zerolog.Logger
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(sockets SocketServer, logger zerolog.Logger) *NotificationController {
	return &NotificationController{
		sockets: sockets,
		logger:  logger,
	}
}

// Connect upgrades the request to a websocket carrying the caller's notifications.
// It is mounted outside /api/v1 at /ws/notifications; browsers pass the access
// token as the access_token query parameter.
func (c *NotificationController) Connect(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	// the upgrader writes its own error response
	if err := c.sockets.ServeWS(ctx.Writer, ctx.Request, userID); err != nil {
		c.logger.Debug().Err(err).Str("userID", userID.String()).Msg("Websocket upgrade failed")
		return
	}
	c.logger.Debug().Str("userID", userID.String()).Msg("Notification socket connected")
}
