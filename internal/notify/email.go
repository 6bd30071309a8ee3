// Package notify sends transactional email for domain events: a copy
// of each contact enquiry to the school inbox and a welcome mail to
// new newsletter subscribers.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailMessage is a single outbound mail.
type EmailMessage struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

// EmailService sends transactional mail.
type EmailService interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// ===== SENDGRID =====

const (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

type sendgridService struct {
	key    string
	from   *sgmail.Email
	logger *slog.Logger
}

// NewSendgridService sends through the SendGrid v3 API.
func NewSendgridService(key, fromName, fromEmail string, logger *slog.Logger) EmailService {
	return &sendgridService{
		key:    key,
		from:   sgmail.NewEmail(fromName, fromEmail),
		logger: logger,
	}
}

func (s *sendgridService) Send(ctx context.Context, msg EmailMessage) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	m.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", html),
	)

	req := sendgrid.GetRequest(s.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid rejected message: status %d", res.StatusCode)
	}

	s.logger.Debug("email sent", "to", msg.ToEmail, "subject", msg.Subject)
	return nil
}

// ===== CONSOLE =====

// consoleService logs mail instead of sending it. Used in development
// and when no SendGrid key is configured.
type consoleService struct {
	logger *slog.Logger
}

func NewConsoleService(logger *slog.Logger) EmailService {
	return &consoleService{logger: logger}
}

func (s *consoleService) Send(ctx context.Context, msg EmailMessage) error {
	s.logger.Info("email (console)",
		"to", msg.ToEmail,
		"subject", msg.Subject,
		"body", msg.Text,
	)
	return nil
}
