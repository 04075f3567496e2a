// internal/messaging/email.go
package messaging

import (
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/arenalabs/courtbook/internal/config"
)

// EmailService sends plain-text transactional mail (booking confirmations)
// through sendgrid. Like the WhatsApp path, failures are logged and
// swallowed.
type EmailService struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func NewEmailService(cfg *config.Config) *EmailService {
	s := &EmailService{
		from:     cfg.Sendgrid.From,
		fromName: cfg.Sendgrid.FromName,
	}
	if cfg.Sendgrid.APIKey != "" {
		s.client = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	}
	return s
}

// Send delivers one plain-text email; returns false when disabled or failed.
func (s *EmailService) Send(to, subject, body string) bool {
	if s.client == nil || s.from == "" {
		slog.Warn("email disabled, dropping message")
		return false
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.from),
		subject,
		mail.NewEmail("", to),
		body,
		body,
	)
	resp, err := s.client.Send(message)
	if err != nil {
		slog.Error("email: send failed", "error", err)
		return false
	}
	if resp.StatusCode >= 300 {
		slog.Error("email: send rejected", "status", fmt.Sprintf("%d", resp.StatusCode))
		return false
	}
	return true
}
