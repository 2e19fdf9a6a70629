package events

import (
	"time"

	"github.com/google/uuid"
)

// Type is the routing key of a domain event.
type Type string

const (
	CollaborationRequested   Type = "collaboration.requested"
	CollaborationAccepted    Type = "collaboration.accepted"
	CollaborationDeclined    Type = "collaboration.declined"
	EventRegistered          Type = "event.registered"
	EventRegistrationRemoved Type = "event.registration_cancelled"
	SubmissionCreated        Type = "submission.created"
	SubmissionReviewed       Type = "submission.reviewed"
)

// Event is the envelope published to the exchange and pushed to websocket clients.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       Type           `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	UserID     uuid.UUID      `json:"userId"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// New builds an event addressed to userID.
func New(t Type, userID uuid.UUID, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       t,
		OccurredAt: time.Now().UTC(),
		UserID:     userID,
		Payload:    payload,
	}
}
