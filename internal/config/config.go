// internal/config/config.go
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Database struct {
		Host       string `envconfig:"DB_HOST" default:"localhost"`
		Port       string `envconfig:"DB_PORT" default:"5432"`
		User       string `envconfig:"DB_USER" default:"postgres"`
		Password   string `envconfig:"DB_PASSWORD" default:""`
		Name       string `envconfig:"DB_NAME" default:"courtbook"`
		SSLMode    string `envconfig:"DB_SSLMODE" default:"disable"`
		SearchPath string `envconfig:"DB_SCHEMA" default:"public"`
	}
	Server struct {
		Port         string        `envconfig:"SERVER_PORT" default:"8080"`
		ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
		WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	}
	JWT struct {
		Secret       string        `envconfig:"JWT_SECRET" default:"change-me"`
		ExpiryPeriod time.Duration `envconfig:"JWT_EXPIRY" default:"24h"`
	}
	Booking struct {
		// Fixed reference offset (hours from UTC) used to decide whether a
		// slot on "today" has already elapsed. Never derived from the host
		// locale; the reference deployment runs at -3.
		LocalUTCOffset int `envconfig:"BOOKING_LOCAL_UTC_OFFSET" default:"-3"`
	}
	Messaging struct {
		// TWILIO or EVOLUTION_API; empty disables WhatsApp sends.
		Provider string `envconfig:"MESSAGING_PROVIDER" default:""`

		TwilioAccountSID   string `envconfig:"TWILIO_ACCOUNT_SID" default:""`
		TwilioAuthToken    string `envconfig:"TWILIO_AUTH_TOKEN" default:""`
		TwilioWhatsAppFrom string `envconfig:"TWILIO_WHATSAPP_FROM" default:""`

		EvolutionURL      string `envconfig:"EVOLUTION_API_URL" default:""`
		EvolutionAPIKey   string `envconfig:"EVOLUTION_API_KEY" default:""`
		EvolutionInstance string `envconfig:"EVOLUTION_INSTANCE_NAME" default:""`
	}
	Sendgrid struct {
		APIKey   string `envconfig:"SENDGRID_API_KEY" default:""`
		From     string `envconfig:"SENDGRID_FROM" default:""`
		FromName string `envconfig:"SENDGRID_FROM_NAME" default:"Courtbook"`
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DSN assembles the postgres connection string.
func (c *Config) DSN() string {
	return "host=" + c.Database.Host +
		" port=" + c.Database.Port +
		" user=" + c.Database.User +
		" password=" + c.Database.Password +
		" dbname=" + c.Database.Name +
		" sslmode=" + c.Database.SSLMode +
		" search_path=" + c.Database.SearchPath
}
