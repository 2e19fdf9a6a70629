package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a scheduled workshop, webinar or conference.
type Event struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	Title                string     `json:"title" db:"title"`
	Description          *string    `json:"description,omitempty" db:"description"`
	EventType            string     `json:"eventType" db:"event_type" example:"workshop"`
	Location             *string    `json:"location,omitempty" db:"location"`
	IsVirtual            bool       `json:"isVirtual" db:"is_virtual"`
	StartDate            time.Time  `json:"startDate" db:"start_date"`
	EndDate              time.Time  `json:"endDate" db:"end_date"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty" db:"registration_deadline"`
	MaxAttendees         *int       `json:"maxAttendees,omitempty" db:"max_attendees"`
	CreatedBy            *uuid.UUID `json:"createdBy,omitempty" db:"created_by"`
	AttendeeCount        int        `json:"attendeeCount" db:"attendee_count"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// ValidSchedule reports whether the event ends after it starts and any
// registration deadline falls on or before the start.
func (e *Event) ValidSchedule() bool {
	if !e.StartDate.Before(e.EndDate) {
		return false
	}
	return e.RegistrationDeadline == nil || !e.RegistrationDeadline.After(e.StartDate)
}

// DeadlinePassed reports whether registration has closed by date at now.
// Without an explicit deadline registration closes when the event starts.
func (e *Event) DeadlinePassed(now time.Time) bool {
	if e.RegistrationDeadline != nil {
		return now.After(*e.RegistrationDeadline)
	}
	return !now.Before(e.StartDate)
}

// IsFull reports whether every seat is taken. Events without a cap are never full.
func (e *Event) IsFull() bool {
	return e.MaxAttendees != nil && e.AttendeeCount >= *e.MaxAttendees
}

// RegistrationOpen reports whether a new registration would be accepted at now.
func (e *Event) RegistrationOpen(now time.Time) bool {
	return !e.DeadlinePassed(now) && !e.IsFull()
}

// SpotsLeft returns the remaining seats, or nil when the event is uncapped.
func (e *Event) SpotsLeft() *int {
	if e.MaxAttendees == nil {
		return nil
	}
	left := *e.MaxAttendees - e.AttendeeCount
	if left < 0 {
		left = 0
	}
	return &left
}

// EventRegistration is a user's claimed seat.
type EventRegistration struct {
	ID           uuid.UUID `json:"id" db:"id"`
	EventID      uuid.UUID `json:"eventId" db:"event_id"`
	UserID       uuid.UUID `json:"userId" db:"user_id"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}
