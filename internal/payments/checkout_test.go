package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{12.50, 1250},
		{20, 2000},
		{0.01, 1},
		{19.99, 1999},
		{449.95, 44995},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price), "price %v", tt.price)
	}
}

func TestBuildSessionParams(t *testing.T) {
	params := buildSessionParams(SessionParams{
		UserID:        "user-1",
		CustomerEmail: "buyer@example.com",
		CustomerName:  "Buyer",
		Items: []LineItem{
			{Name: "Original Canvas", Amount: MinorUnits(12.50), Quantity: 1},
		},
		SuccessURL: "https://scalebreakers.space/shop?payment=success",
		CancelURL:  "https://scalebreakers.space/shop?payment=cancelled",
		Metadata:   map[string]string{"type": "product", "product_id": "p-1"},
	})

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, int64(1250), *item.PriceData.UnitAmount)
	assert.Equal(t, "aud", *item.PriceData.Currency)
	assert.Equal(t, "Original Canvas", *item.PriceData.ProductData.Name)
	assert.Equal(t, int64(1), *item.Quantity)

	assert.Equal(t, "payment", *params.Mode)
	assert.Equal(t, "buyer@example.com", *params.CustomerEmail)
	assert.Equal(t, "user-1", *params.ClientReferenceID)
	assert.Equal(t, "https://scalebreakers.space/shop?payment=success", *params.SuccessURL)
	assert.True(t, *params.AllowPromotionCodes)

	assert.Equal(t, "product", params.Metadata["type"])
	assert.Equal(t, "p-1", params.Metadata["product_id"])
	assert.Equal(t, "user-1", params.Metadata["user_id"])
}

func TestBuildSessionParamsGuest(t *testing.T) {
	params := buildSessionParams(SessionParams{
		Items: []LineItem{{Name: "Deposit", Amount: 5000, Quantity: 1}},
	})
	assert.Nil(t, params.CustomerEmail)
	assert.Nil(t, params.ClientReferenceID)
}

func TestCreateCheckoutSessionNotConfigured(t *testing.T) {
	c := New("", "")
	_, err := c.CreateCheckoutSession(context.Background(), SessionParams{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestParseCompletedCheckoutNotConfigured(t *testing.T) {
	c := New("sk_test_x", "")
	_, err := c.ParseCompletedCheckout([]byte("{}"), "sig")
	assert.ErrorIs(t, err, ErrWebhookNotConfigured)
}

func TestParseCompletedCheckoutBadSignature(t *testing.T) {
	c := New("sk_test_x", "whsec_test")
	_, err := c.ParseCompletedCheckout([]byte(`{"type":"checkout.session.completed"}`), "bogus")
	assert.Error(t, err)
}
