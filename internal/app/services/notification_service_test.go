package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/impactlink/impactlink/internal/app/models"
	"github.com/impactlink/impactlink/internal/pkg/events"
)

type fakePusher struct {
	mu   sync.Mutex
	sent map[uuid.UUID][]any
	err  error
}

func (p *fakePusher) SendToUser(userID uuid.UUID, v any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	if p.sent == nil {
		p.sent = map[uuid.UUID][]any{}
	}
	p.sent[userID] = append(p.sent[userID], v)
	return nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *fakeMailer) SendConnectionRequestEmail(toEmail, _, fromName, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, "connection:"+toEmail+":"+fromName)
	return m.err
}

func (m *fakeMailer) SendRegistrationConfirmation(toEmail, eventTitle, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, "registration:"+toEmail+":"+eventTitle)
	return m.err
}

type countingMetrics struct {
	mu     sync.Mutex
	failed map[string]int
	events map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{failed: map[string]int{}, events: map[string]int{}}
}

func (c *countingMetrics) NotificationFailed(channel string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed[channel]++
}

func (c *countingMetrics) DomainEvent(eventType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events[eventType]++
}

func TestNotifierCollaborationFanOut(t *testing.T) {
	ctx := context.Background()
	rec := &events.Recorder{}
	pusher := &fakePusher{}
	mailer := &fakeMailer{}
	metrics := newCountingMetrics()
	n := NewNotificationService(rec, pusher, mailer, metrics, zerolog.Nop())

	requester := &models.Profile{ID: uuid.New(), UserID: uuid.New(), Name: "Alice", Email: "alice@example.org"}
	recipient := &models.Profile{ID: uuid.New(), UserID: uuid.New(), Name: "Bob", Email: "bob@example.org"}
	c := &models.Collaboration{ID: uuid.New(), RequesterID: requester.ID, RecipientID: recipient.ID, Status: models.CollaborationPending}

	n.CollaborationRequested(ctx, c, requester, recipient)
	c.Status = models.CollaborationAccepted
	n.CollaborationResolved(ctx, c, requester, recipient)
	n.Wait()

	assert.Equal(t, []events.Type{events.CollaborationRequested, events.CollaborationAccepted}, rec.Types())
	recorded := rec.Events()
	assert.Equal(t, recipient.UserID, recorded[0].UserID)
	assert.Equal(t, requester.UserID, recorded[1].UserID)

	assert.Len(t, pusher.sent[recipient.UserID], 1)
	assert.Len(t, pusher.sent[requester.UserID], 1)
	assert.Equal(t, []string{"connection:bob@example.org:Alice"}, mailer.sent)
	assert.Equal(t, 1, metrics.events[string(events.CollaborationRequested)])
	assert.Empty(t, metrics.failed)
}

func TestNotifierFailuresAreCountedNotReturned(t *testing.T) {
	ctx := context.Background()
	rec := &events.Recorder{Err: errors.New("broker down")}
	pusher := &fakePusher{err: errors.New("no connection")}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	metrics := newCountingMetrics()
	n := NewNotificationService(rec, pusher, mailer, metrics, zerolog.Nop())

	e := &models.Event{ID: uuid.New(), Title: "Kinship webinar", StartDate: time.Now().Add(time.Hour)}
	reg := &models.EventRegistration{ID: uuid.New(), EventID: e.ID, UserID: uuid.New()}

	n.EventRegistered(ctx, e, reg, "user@example.org")
	n.Wait()

	assert.Equal(t, 1, metrics.failed["amqp"])
	assert.Equal(t, 1, metrics.failed["websocket"])
	assert.Equal(t, 1, metrics.failed["email"])
	assert.Equal(t, []string{"registration:user@example.org:Kinship webinar"}, mailer.sent)
}

func TestNotifierWithoutOptionalChannels(t *testing.T) {
	rec := &events.Recorder{}
	n := NewNotificationService(rec, nil, nil, nil, zerolog.Nop())
	s := &models.Submission{ID: uuid.New(), Title: "Kinship outcomes", Status: models.SubmissionApproved}
	author := uuid.New()

	n.SubmissionCreated(context.Background(), s, author)
	n.SubmissionReviewed(context.Background(), s, author)
	n.EventRegistrationCancelled(context.Background(), &models.Event{ID: uuid.New()}, author)
	n.Wait()

	require.Len(t, rec.Events(), 3)
	assert.Equal(t, []events.Type{events.SubmissionCreated, events.SubmissionReviewed, events.EventRegistrationRemoved}, rec.Types())
	assert.Equal(t, models.SubmissionApproved, rec.Events()[1].Payload["status"])
}
