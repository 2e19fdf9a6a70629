package models

import (
	"time"

	"github.com/google/uuid"
)

// Collaboration is a directed connection request between two profiles.
type Collaboration struct {
	ID          uuid.UUID           `json:"id" db:"id"`
	RequesterID uuid.UUID           `json:"requesterId" db:"requester_id"`
	RecipientID uuid.UUID           `json:"recipientId" db:"recipient_id"`
	Status      CollaborationStatus `json:"status" db:"status" example:"pending"`
	Message     *string             `json:"message,omitempty" db:"message"`
	RespondedAt *time.Time          `json:"respondedAt,omitempty" db:"responded_at"`
	CreatedAt   time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time           `json:"updatedAt" db:"updated_at"`

	Requester *ProfileSummary `json:"requester,omitempty"`
	Recipient *ProfileSummary `json:"recipient,omitempty"`
}

// CanTransition reports whether a collaboration may move from one status to
// another. Only pending requests can be resolved; accepted and declined are terminal.
func CanTransition(from, to CollaborationStatus) bool {
	return from == CollaborationPending && (to == CollaborationAccepted || to == CollaborationDeclined)
}

// Involves reports whether profileID is either party.
func (c *Collaboration) Involves(profileID uuid.UUID) bool {
	return c.RequesterID == profileID || c.RecipientID == profileID
}

// Counterpart returns whichever party is not profileID.
func (c *Collaboration) Counterpart(profileID uuid.UUID) (uuid.UUID, *ProfileSummary) {
	if c.RequesterID == profileID {
		return c.RecipientID, c.Recipient
	}
	return c.RequesterID, c.Requester
}

// ConnectionState is the relationship of the caller to another profile, used
// to render the connect button.
type ConnectionState string

const (
	ConnectionNone            ConnectionState = "none"
	ConnectionPendingOutgoing ConnectionState = "pending_outgoing"
	ConnectionPendingIncoming ConnectionState = "pending_incoming"
	ConnectionConnected       ConnectionState = "connected"
)

// ConnectionStateFor derives the state between self and other from the rows
// that involve both of them. Declined rows do not count.
func ConnectionStateFor(self uuid.UUID, rows []*Collaboration) ConnectionState {
	state := ConnectionNone
	for _, c := range rows {
		switch c.Status {
		case CollaborationAccepted:
			return ConnectionConnected
		case CollaborationPending:
			if c.RequesterID == self {
				state = ConnectionPendingOutgoing
			} else {
				state = ConnectionPendingIncoming
			}
		}
	}
	return state
}
