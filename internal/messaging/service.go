// internal/messaging/service.go
package messaging

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arenalabs/courtbook/internal/config"
)

// Provider identifies supported WhatsApp gateways.
type Provider string

const (
	ProviderTwilio    Provider = "TWILIO"
	ProviderEvolution Provider = "EVOLUTION_API"
)

// Notifier is the fire-and-forget messaging capability the booking flow
// consumes. A false return means the message did not go out; callers log
// and move on, delivery failures never roll back a booking.
type Notifier interface {
	Notify(ctx context.Context, phone, text string) bool
}

//go:generate mockgen -source=./service.go -destination=../mocks/mock_notifier.go -package=mocks Notifier

type sender interface {
	send(ctx context.Context, phone, text string) error
}

// Service routes outbound WhatsApp texts to the configured provider.
type Service struct {
	provider Provider
	sender   sender
}

func NewService(cfg *config.Config) *Service {
	s := &Service{provider: Provider(cfg.Messaging.Provider)}

	client := &http.Client{Timeout: 10 * time.Second}
	switch s.provider {
	case ProviderTwilio:
		s.sender = &twilioSender{
			client:     client,
			accountSID: cfg.Messaging.TwilioAccountSID,
			authToken:  cfg.Messaging.TwilioAuthToken,
			from:       cfg.Messaging.TwilioWhatsAppFrom,
		}
	case ProviderEvolution:
		s.sender = &evolutionSender{
			client:   client,
			baseURL:  cfg.Messaging.EvolutionURL,
			apiKey:   cfg.Messaging.EvolutionAPIKey,
			instance: cfg.Messaging.EvolutionInstance,
		}
	}
	return s
}

// Notify sends a WhatsApp text. Every failure path logs and returns false;
// nothing here is allowed to surface an error into a booking flow.
func (s *Service) Notify(ctx context.Context, phone, text string) bool {
	if s.sender == nil {
		slog.Warn("messaging disabled, dropping message", "provider", s.provider)
		return false
	}

	cleaned := cleanPhone(phone)
	if cleaned == "" {
		slog.Warn("messaging: empty recipient, dropping message")
		return false
	}

	if err := s.sender.send(ctx, cleaned, text); err != nil {
		slog.Error("messaging: send failed", "provider", s.provider, "error", err)
		return false
	}
	return true
}

// cleanPhone strips everything but digits; gateways expect country code
// plus number, no "+" and no separators.
func cleanPhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
