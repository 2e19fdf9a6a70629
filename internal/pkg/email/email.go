package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Message is a rendered email ready to send.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers email messages
type Sender interface {
	Send(msg Message) error
}

// EmailService renders the notification emails and hands them to a Sender
type EmailService interface {
	SendConnectionRequestEmail(toEmail, toName, fromName, message string) error
	SendRegistrationConfirmation(toEmail, eventTitle, when string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	BaseURL  string
}

// Enabled reports whether enough is configured to actually send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != ""
}

// SMTPSender sends mail with gomail. When SMTP is not configured messages
// are logged and dropped.
type SMTPSender struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPSender creates a new SMTPSender
func NewSMTPSender(config SMTPConfig, logger zerolog.Logger) *SMTPSender {
	return &SMTPSender{config: config, logger: logger}
}

// Send implements Sender
func (s *SMTPSender) Send(msg Message) error {
	if !s.config.Enabled() {
		s.logger.Warn().
			Str("toEmail", msg.To).
			Str("subject", msg.Subject).
			Msg("SMTP not configured - email not sent")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	d := gomail.NewDialer(s.config.Host, s.config.Port, s.config.Username, s.config.Password)
	if err := d.DialAndSend(m); err != nil {
		s.logger.Error().Err(err).Str("toEmail", msg.To).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	sender  Sender
	baseURL string
}

// NewEmailService creates a new EmailService
func NewEmailService(sender Sender, baseURL string) EmailService {
	return &EmailServiceImpl{sender: sender, baseURL: strings.TrimRight(baseURL, "/")}
}

var connectionRequestTemplate = template.Must(template.New("connection").Parse(`
<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">New connection request</h2>
		<p>Hello {{.ToName}},</p>
		<p><strong>{{.FromName}}</strong> would like to connect with you on ImpactLink.</p>
		{{if .Message}}<blockquote style="color: #555;">{{.Message}}</blockquote>{{end}}
		<p><a href="{{.Link}}">Review the request</a></p>
		<p>The ImpactLink Team</p>
	</div>
</body>
</html>`))

var registrationTemplate = template.Must(template.New("registration").Parse(`
<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">You're registered</h2>
		<p>Your seat for <strong>{{.Title}}</strong> on {{.When}} is confirmed.</p>
		<p><a href="{{.Link}}">See your events</a></p>
		<p>The ImpactLink Team</p>
	</div>
</body>
</html>`))

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", t.Name(), err)
	}
	return b.String(), nil
}

// SendConnectionRequestEmail tells a profile owner someone wants to connect
func (s *EmailServiceImpl) SendConnectionRequestEmail(toEmail, toName, fromName, message string) error {
	body, err := render(connectionRequestTemplate, map[string]string{
		"ToName":   toName,
		"FromName": fromName,
		"Message":  message,
		"Link":     s.baseURL + "/collaborations",
	})
	if err != nil {
		return err
	}
	return s.sender.Send(Message{
		To:      toEmail,
		Subject: fromName + " wants to connect on ImpactLink",
		HTML:    body,
	})
}

// SendRegistrationConfirmation confirms an event registration
func (s *EmailServiceImpl) SendRegistrationConfirmation(toEmail, eventTitle, when string) error {
	body, err := render(registrationTemplate, map[string]string{
		"Title": eventTitle,
		"When":  when,
		"Link":  s.baseURL + "/events",
	})
	if err != nil {
		return err
	}
	return s.sender.Send(Message{
		To:      toEmail,
		Subject: "Registration confirmed: " + eventTitle,
		HTML:    body,
	})
}
