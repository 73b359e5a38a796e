package email

import (
	"context"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// Sender is what handlers depend on; a fake implementation stands in during
// tests.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) bool
}

// Mailer delivers HTML mail over SMTP. Send reports success as a bool and
// never lets a transport error escape; with no credentials configured it
// warns and no-ops so local development works without a relay.
type Mailer struct {
	client *mail.Client
	from   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	m := &Mailer{from: cfg.From}
	if cfg.Password == "" {
		return m, nil
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, err
	}
	m.client = client
	return m, nil
}

func (m *Mailer) Send(ctx context.Context, to, subject, html string) bool {
	if m.client == nil {
		slog.Warn("EMAIL_PASSWORD not configured, email not sent", "to", to, "subject", subject)
		return false
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		slog.Error("invalid from address", "from", m.from, "error", err)
		return false
	}
	if err := msg.To(to); err != nil {
		slog.Error("invalid recipient address", "to", to, "error", err)
		return false
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		slog.Error("failed to send email", "to", to, "subject", subject, "error", err)
		return false
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return true
}
