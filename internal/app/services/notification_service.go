package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/email"
	"github.com/impactlink/impactlink/internal/pkg/events"
)

// Notifier fans domain events out to the message broker, the user's open
// websocket connections and, for some events, email. Delivery failures are
// logged and never returned to the caller.
type Notifier interface {
	CollaborationRequested(ctx context.Context, c *models.Collaboration, requester, recipient *models.Profile)
	CollaborationResolved(ctx context.Context, c *models.Collaboration, requester, recipient *models.Profile)
	EventRegistered(ctx context.Context, e *models.Event, reg *models.EventRegistration, userEmail string)
	EventRegistrationCancelled(ctx context.Context, e *models.Event, userID uuid.UUID)
	SubmissionCreated(ctx context.Context, s *models.Submission, authorUserID uuid.UUID)
	SubmissionReviewed(ctx context.Context, s *models.Submission, authorUserID uuid.UUID)
	// Wait blocks until queued emails have been handed to the sender.
	Wait()
}

// Pusher delivers a message to every open connection of a user
type Pusher interface {
	SendToUser(userID uuid.UUID, v any) error
}

// NotificationMetrics counts delivered and failed notifications
type NotificationMetrics interface {
	NotificationFailed(channel string)
	DomainEvent(eventType string)
}

type nopNotificationMetrics struct{}

func (nopNotificationMetrics) NotificationFailed(string) {}
func (nopNotificationMetrics) DomainEvent(string)        {}

// notificationServiceImpl implements the Notifier interface
type notificationServiceImpl struct {
	publisher events.Publisher
	pusher    Pusher
	email     email.EmailService
	metrics   NotificationMetrics
	logger    zerolog.Logger

	mailWG sync.WaitGroup
}

// NewNotificationService creates a Notifier. pusher, mailer and metrics may be nil.
func NewNotificationService(
	publisher events.Publisher,
	pusher Pusher,
	mailer email.EmailService,
	metrics NotificationMetrics,
	logger zerolog.Logger,
) Notifier {
	if metrics == nil {
		metrics = nopNotificationMetrics{}
	}
	return &notificationServiceImpl{
		publisher: publisher,
		pusher:    pusher,
		email:     mailer,
		metrics:   metrics,
		logger:    logger,
	}
}

func (n *notificationServiceImpl) dispatch(ctx context.Context, event events.Event) {
	n.metrics.DomainEvent(string(event.Type))

	if n.publisher != nil {
		if err := n.publisher.Publish(ctx, event); err != nil {
			n.metrics.NotificationFailed("amqp")
			n.logger.Error().Err(err).
				Str("eventType", string(event.Type)).
				Str("userID", event.UserID.String()).
				Msg("Failed to publish domain event")
		}
	}

	if n.pusher != nil {
		if err := n.pusher.SendToUser(event.UserID, event); err != nil {
			n.metrics.NotificationFailed("websocket")
			n.logger.Warn().Err(err).
				Str("eventType", string(event.Type)).
				Str("userID", event.UserID.String()).
				Msg("Failed to push notification")
		}
	}
}

// sendMail runs send in the background so SMTP latency never reaches the request
func (n *notificationServiceImpl) sendMail(kind string, send func(email.EmailService) error) {
	if n.email == nil {
		return
	}
	n.mailWG.Add(1)
	go func() {
		defer n.mailWG.Done()
		if err := send(n.email); err != nil {
			n.metrics.NotificationFailed("email")
			n.logger.Error().Err(err).Str("kind", kind).Msg("Failed to send notification email")
		}
	}()
}

func (n *notificationServiceImpl) Wait() {
	n.mailWG.Wait()
}

func (n *notificationServiceImpl) CollaborationRequested(ctx context.Context, c *models.Collaboration, requester, recipient *models.Profile) {
	n.dispatch(ctx, events.New(events.CollaborationRequested, recipient.UserID, map[string]any{
		"collaborationId": c.ID,
		"requesterId":     requester.ID,
		"requesterName":   requester.Name,
	}))

	message := ""
	if c.Message != nil {
		message = *c.Message
	}
	toEmail, toName, fromName := recipient.Email, recipient.Name, requester.Name
	n.sendMail("connection_request", func(svc email.EmailService) error {
		return svc.SendConnectionRequestEmail(toEmail, toName, fromName, message)
	})
}

func (n *notificationServiceImpl) CollaborationResolved(ctx context.Context, c *models.Collaboration, requester, recipient *models.Profile) {
	eventType := events.CollaborationDeclined
	if c.Status == models.CollaborationAccepted {
		eventType = events.CollaborationAccepted
	}
	n.dispatch(ctx, events.New(eventType, requester.UserID, map[string]any{
		"collaborationId": c.ID,
		"recipientId":     recipient.ID,
		"recipientName":   recipient.Name,
		"status":          c.Status,
	}))
}

func (n *notificationServiceImpl) EventRegistered(ctx context.Context, e *models.Event, reg *models.EventRegistration, userEmail string) {
	n.dispatch(ctx, events.New(events.EventRegistered, reg.UserID, map[string]any{
		"eventId":        e.ID,
		"registrationId": reg.ID,
		"title":          e.Title,
	}))

	if userEmail == "" {
		return
	}
	title, when := e.Title, e.StartDate.UTC().Format(time.RFC1123)
	n.sendMail("registration_confirmation", func(svc email.EmailService) error {
		return svc.SendRegistrationConfirmation(userEmail, title, when)
	})
}

func (n *notificationServiceImpl) EventRegistrationCancelled(ctx context.Context, e *models.Event, userID uuid.UUID) {
	n.dispatch(ctx, events.New(events.EventRegistrationRemoved, userID, map[string]any{
		"eventId": e.ID,
		"title":   e.Title,
	}))
}

func (n *notificationServiceImpl) SubmissionCreated(ctx context.Context, s *models.Submission, authorUserID uuid.UUID) {
	n.dispatch(ctx, events.New(events.SubmissionCreated, authorUserID, map[string]any{
		"submissionId": s.ID,
		"title":        s.Title,
	}))
}

func (n *notificationServiceImpl) SubmissionReviewed(ctx context.Context, s *models.Submission, authorUserID uuid.UUID) {
	n.dispatch(ctx, events.New(events.SubmissionReviewed, authorUserID, map[string]any{
		"submissionId": s.ID,
		"title":        s.Title,
		"status":       s.Status,
	}))
}
