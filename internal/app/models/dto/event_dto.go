package dto

import (
	"time"

	"github.com/impactlink/impactlink/internal/app/models"
)

// EventRequest creates or fully replaces an event (admin).
type EventRequest struct {
	Title                string     `json:"title" binding:"required,min=3,max=255"`
	Description          *string    `json:"description" binding:"omitempty,max=10000"`
	EventType            string     `json:"eventType" binding:"required,max=50" example:"workshop"`
	Location             *string    `json:"location" binding:"omitempty,max=255"`
	IsVirtual            bool       `json:"isVirtual"`
	StartDate            time.Time  `json:"startDate" binding:"required"`
	EndDate              time.Time  `json:"endDate" binding:"required"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	MaxAttendees         *int       `json:"maxAttendees" binding:"omitempty,min=1"`
}

// ToModel copies the request onto an event.
func (r EventRequest) ToModel() *models.Event {
	return &models.Event{
		Title:                r.Title,
		Description:          r.Description,
		EventType:            r.EventType,
		Location:             r.Location,
		IsVirtual:            r.IsVirtual,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		RegistrationDeadline: r.RegistrationDeadline,
		MaxAttendees:         r.MaxAttendees,
	}
}

// EventQuery binds the event list filters.
type EventQuery struct {
	Type     string `form:"type"`
	From     string `form:"from"`
	To       string `form:"to"`
	Month    string `form:"month" binding:"omitempty,yearmonth" example:"2026-05"`
	Upcoming bool   `form:"upcoming"`
}

// EventFilter is the resolved time window and type passed to the store.
type EventFilter struct {
	EventType string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// EventResponse is an event plus registration state computed at read time.
type EventResponse struct {
	*models.Event
	RegistrationOpen bool `json:"registrationOpen"`
	SpotsLeft        *int `json:"spotsLeft,omitempty"`
	IsRegistered     bool `json:"isRegistered"`
}

// NewEventResponse computes the derived registration fields at now.
func NewEventResponse(e *models.Event, isRegistered bool, now time.Time) EventResponse {
	return EventResponse{
		Event:            e,
		RegistrationOpen: e.RegistrationOpen(now) && !isRegistered,
		SpotsLeft:        e.SpotsLeft(),
		IsRegistered:     isRegistered,
	}
}

// EventListResponse is a page of events.
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}
