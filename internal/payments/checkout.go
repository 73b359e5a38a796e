package payments

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// ErrNotConfigured is returned when no Stripe credential is present.
var ErrNotConfigured = errors.New("stripe is not configured: set STRIPE_SECRET_KEY")

// SessionBuilder is the surface handlers depend on.
type SessionBuilder interface {
	CreateCheckoutSession(ctx context.Context, p SessionParams) (string, error)
}

// Client wraps the Stripe API for hosted checkout sessions.
type Client struct {
	api           *client.API
	webhookSecret string
}

func New(secretKey, webhookSecret string) *Client {
	c := &Client{webhookSecret: webhookSecret}
	if secretKey != "" {
		c.api = &client.API{}
		c.api.Init(secretKey, nil)
	}
	return c
}

// LineItem is a purchasable row on the checkout page. Amount is in minor
// currency units (cents); the caller converts prices with MinorUnits.
type LineItem struct {
	Name     string
	Amount   int64
	Quantity int64
}

type SessionParams struct {
	CustomerEmail string
	CustomerName  string
	UserID        string
	Items         []LineItem
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// MinorUnits converts a decimal price to integral cents, rounding half away
// from zero so 12.50 becomes exactly 1250.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateCheckoutSession builds a hosted checkout session and returns the
// redirect URL. Provider errors propagate to the caller.
func (c *Client) CreateCheckoutSession(ctx context.Context, p SessionParams) (string, error) {
	if c.api == nil {
		return "", ErrNotConfigured
	}

	params := buildSessionParams(p)
	params.Context = ctx

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	if session.URL == "" {
		return "", errors.New("checkout session has no redirect URL")
	}
	return session.URL, nil
}

func buildSessionParams(p SessionParams) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, item := range p.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				// AUD to match the business location
				Currency: stripe.String("aud"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
				UnitAmount: stripe.Int64(item.Amount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes:  stripe.StringSlice([]string{"card"}),
		LineItems:           lineItems,
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
		AllowPromotionCodes: stripe.Bool(true),
	}
	if p.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(p.CustomerEmail)
	}
	if p.UserID != "" {
		params.ClientReferenceID = stripe.String(p.UserID)
	}

	params.AddMetadata("user_id", p.UserID)
	params.AddMetadata("customer_email", p.CustomerEmail)
	params.AddMetadata("customer_name", p.CustomerName)
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	return params
}
