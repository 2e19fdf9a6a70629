package email

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	sent []Message
}

func (c *captureSender) Send(msg Message) error {
	c.sent = append(c.sent, msg)
	return nil
}

func TestConnectionRequestEmail(t *testing.T) {
	sender := &captureSender{}
	svc := NewEmailService(sender, "https://impactlink.app/")

	require.NoError(t, svc.SendConnectionRequestEmail("agency@safehomes.org", "Safe Homes", "Jordan Lee", "<b>hi</b>"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "agency@safehomes.org", msg.To)
	assert.Equal(t, "Jordan Lee wants to connect on ImpactLink", msg.Subject)
	assert.Contains(t, msg.HTML, "https://impactlink.app/collaborations")
	assert.Contains(t, msg.HTML, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestRegistrationConfirmation(t *testing.T) {
	sender := &captureSender{}
	svc := NewEmailService(sender, "http://localhost:8080")

	require.NoError(t, svc.SendRegistrationConfirmation("jordan@stateu.edu", "Trauma-Informed Care", "May 1, 2026"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Registration confirmed: Trauma-Informed Care", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "May 1, 2026")
}

func TestSMTPSenderDisabledIsNoop(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Port: 587, From: "no-reply@impactlink.app"}, zerolog.Nop())
	assert.NoError(t, s.Send(Message{To: "x@y.z", Subject: "s", HTML: "b"}))
}
