package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/impactlink/impactlink/internal/app/models"
)

// CreateCollaborationRequest sends a connection request to another profile.
type CreateCollaborationRequest struct {
	RecipientID uuid.UUID `json:"recipientId" binding:"required"`
	Message     *string   `json:"message" binding:"omitempty,max=1000"`
}

// RespondCollaborationRequest accepts or declines an incoming request.
type RespondCollaborationRequest struct {
	Status models.CollaborationStatus `json:"status" binding:"required,oneof=accepted declined" example:"accepted"`
}

// ConnectionResponse is one accepted connection, resolved to the other party.
type ConnectionResponse struct {
	CollaborationID uuid.UUID              `json:"collaborationId"`
	ProfileID       uuid.UUID              `json:"profileId"`
	Profile         *models.ProfileSummary `json:"profile,omitempty"`
	Since           time.Time              `json:"since"`
}

// ConnectionStatusResponse drives the connect button on a profile page.
type ConnectionStatusResponse struct {
	ProfileID uuid.UUID              `json:"profileId"`
	State     models.ConnectionState `json:"state" example:"pending_outgoing"`
}
