package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactscalebreakers-dev/website.supabase/internal/payments"
)

type fakeSessionBuilder struct {
	url    string
	err    error
	calls  int
	params payments.SessionParams
}

func (f *fakeSessionBuilder) CreateCheckoutSession(ctx context.Context, params payments.SessionParams) (string, error) {
	f.calls++
	f.params = params
	return f.url, f.err
}

type fakeWebhookParser struct {
	completed *payments.CompletedCheckout
	err       error
}

func (f *fakeWebhookParser) ParseCompletedCheckout(payload []byte, signature string) (*payments.CompletedCheckout, error) {
	return f.completed, f.err
}

func newPaymentHandler(builder *fakeSessionBuilder, parser *fakeWebhookParser) *PaymentHandler {
	return &PaymentHandler{
		Checkout:     builder,
		Webhook:      parser,
		Auth:         newTestAuth(),
		PublicOrigin: "https://scalebreakers.space",
	}
}

func TestServiceCheckout(t *testing.T) {
	builder := &fakeSessionBuilder{url: "https://checkout.stripe.com/pay/cs_test"}
	h := newPaymentHandler(builder, nil)

	rec := postJSON(t, h.ServiceCheckout, "/api/checkout/service", map[string]any{
		"service":        "Mural",
		"amount":         12.50,
		"customer_name":  "Dana",
		"customer_email": "dana@example.com",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, builder.calls)

	require.Len(t, builder.params.Items, 1)
	item := builder.params.Items[0]
	assert.Equal(t, "Mural Deposit", item.Name)
	assert.Equal(t, int64(1250), item.Amount)
	assert.Equal(t, int64(1), item.Quantity)
	assert.Equal(t, "service", builder.params.Metadata["type"])
	assert.Equal(t, "guest", builder.params.UserID)
	assert.Equal(t, "https://scalebreakers.space/services?payment=success", builder.params.SuccessURL)

	var resp checkoutURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, builder.url, resp.URL)
}

func TestServiceCheckoutUsesOriginHeader(t *testing.T) {
	builder := &fakeSessionBuilder{url: "https://checkout.stripe.com/pay/cs_test"}
	h := newPaymentHandler(builder, nil)

	body := `{"service":"Mural","amount":50,"customer_name":"Dana","customer_email":"dana@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/service", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServiceCheckout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000/services?payment=success", builder.params.SuccessURL)
	assert.Equal(t, "http://localhost:3000/services?payment=cancelled", builder.params.CancelURL)
}

func TestServiceCheckoutValidation(t *testing.T) {
	builder := &fakeSessionBuilder{url: "https://checkout.stripe.com/pay/cs_test"}
	h := newPaymentHandler(builder, nil)

	tests := []map[string]any{
		{"amount": 50, "customer_name": "Dana", "customer_email": "dana@example.com"},
		{"service": "Mural", "amount": 0, "customer_name": "Dana", "customer_email": "dana@example.com"},
		{"service": "Mural", "amount": -5, "customer_name": "Dana", "customer_email": "dana@example.com"},
		{"service": "Mural", "amount": 50, "customer_email": "dana@example.com"},
		{"service": "Mural", "amount": 50, "customer_name": "Dana", "customer_email": "not-an-email"},
	}
	for _, body := range tests {
		rec := postJSON(t, h.ServiceCheckout, "/api/checkout/service", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Zero(t, builder.calls, "invalid requests must not reach Stripe")
}

func TestServiceCheckoutNotConfigured(t *testing.T) {
	builder := &fakeSessionBuilder{err: payments.ErrNotConfigured}
	h := newPaymentHandler(builder, nil)

	rec := postJSON(t, h.ServiceCheckout, "/api/checkout/service", map[string]any{
		"service":        "Mural",
		"amount":         50,
		"customer_name":  "Dana",
		"customer_email": "dana@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestProductCheckoutValidation(t *testing.T) {
	builder := &fakeSessionBuilder{}
	h := newPaymentHandler(builder, nil)

	tests := []map[string]any{
		{"quantity": 1},
		{"product_id": "p1", "quantity": 0},
		{"product_id": "p1", "quantity": -2},
	}
	for _, body := range tests {
		rec := postJSON(t, h.ProductCheckout, "/api/checkout/product", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Zero(t, builder.calls)
}

func TestWorkshopCheckoutValidation(t *testing.T) {
	builder := &fakeSessionBuilder{}
	h := newPaymentHandler(builder, nil)

	tests := []map[string]any{
		{"quantity": 2, "total_price": 40, "name": "Dana", "email": "dana@example.com"},
		{"workshop_id": "w1", "quantity": 0, "total_price": 40, "name": "Dana", "email": "dana@example.com"},
		{"workshop_id": "w1", "quantity": 2, "total_price": 0, "name": "Dana", "email": "dana@example.com"},
		{"workshop_id": "w1", "quantity": 2, "total_price": 40, "email": "dana@example.com"},
		{"workshop_id": "w1", "quantity": 2, "total_price": 40, "name": "Dana", "email": "nope"},
	}
	for _, body := range tests {
		rec := postJSON(t, h.WorkshopCheckout, "/api/checkout/workshop", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Zero(t, builder.calls)
}

func TestStripeWebhookBadSignature(t *testing.T) {
	parser := &fakeWebhookParser{err: errors.New("signature mismatch")}
	h := newPaymentHandler(nil, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.StripeWebhook(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhookIgnoredEvent(t *testing.T) {
	parser := &fakeWebhookParser{} // nil completed means an event we do not act on
	h := newPaymentHandler(nil, parser)

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.StripeWebhook(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}
