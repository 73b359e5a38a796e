package config

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         string `env:"PORT" envDefault:"8585"`
	DatabaseURL  string `env:"DATABASE_URL,required"`
	CookieDomain string `env:"COOKIE_DOMAIN"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// Base64-encoded, min 32 bytes decoded. Random dev keys are generated
	// when unset; sessions then break on every restart.
	CSRFKeyB64    string `env:"CSRF_KEY"`
	SessionKeyB64 string `env:"SESSION_KEY"`
	CSRFKey       []byte `env:"-"`
	SessionKey    []byte `env:"-"`

	// Email on the users table that is promoted to admin on upsert, and the
	// inbox that receives contact/enquiry notifications.
	OwnerEmail string `env:"OWNER_EMAIL"`
	AdminEmail string `env:"ADMIN_EMAIL" envDefault:"contact.scalebreakers@gmail.com"`

	SMTPHost      string `env:"SMTP_HOST" envDefault:"smtp-mail.outlook.com"`
	SMTPPort      int    `env:"SMTP_PORT" envDefault:"587"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPassword string `env:"EMAIL_PASSWORD"`
	EmailFrom     string `env:"EMAIL_FROM" envDefault:"Scale Breakers <contact.scalebreakers@gmail.com>"`

	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// Fallback origin for checkout redirect URLs when the request carries no
	// Origin header.
	PublicOrigin string `env:"PUBLIC_ORIGIN" envDefault:"https://scalebreakers.space"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"static/uploads"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.CSRFKey = decodeKeyOrGenerate("CSRF_KEY", cfg.CSRFKeyB64)
	cfg.SessionKey = decodeKeyOrGenerate("SESSION_KEY", cfg.SessionKeyB64)

	return cfg, nil
}

// decodeKeyOrGenerate decodes a base64 key from the environment, falling back
// to a random per-process key with a loud warning so development still works.
func decodeKeyOrGenerate(name, encoded string) []byte {
	if encoded == "" {
		slog.Warn("environment variable not set; generating a random key for development. This key changes on each restart, set it in production", "key", name)
		return generateRandomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(decoded) < 32 {
		slog.Warn("key is invalid or shorter than 32 bytes; generating a random key for development", "key", name)
		return generateRandomBytes(32)
	}
	return decoded
}

func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is unrecoverable for key material
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return b
}
