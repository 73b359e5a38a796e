package payments

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// ErrWebhookNotConfigured is returned when no signing secret is present.
var ErrWebhookNotConfigured = errors.New("stripe webhook is not configured: set STRIPE_WEBHOOK_SECRET")

// CompletedCheckout is the part of a checkout.session.completed event the
// confirmation flow acts on.
type CompletedCheckout struct {
	SessionID string
	Metadata  map[string]string
}

// ParseCompletedCheckout verifies the webhook signature and extracts a
// completed checkout session. Events of any other type return (nil, nil) so
// the caller can acknowledge and ignore them.
func (c *Client) ParseCompletedCheckout(payload []byte, signature string) (*CompletedCheckout, error) {
	if c.webhookSecret == "" {
		return nil, ErrWebhookNotConfigured
	}

	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("verify webhook signature: %w", err)
	}

	if event.Type != "checkout.session.completed" {
		return nil, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	return &CompletedCheckout{
		SessionID: session.ID,
		Metadata:  session.Metadata,
	}, nil
}
