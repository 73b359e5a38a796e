package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/payments"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

// WebhookParser verifies and decodes Stripe webhook payloads.
type WebhookParser interface {
	ParseCompletedCheckout(payload []byte, signature string) (*payments.CompletedCheckout, error)
}

type PaymentHandler struct {
	Store    *store.Store
	Checkout payments.SessionBuilder
	Webhook  WebhookParser
	Auth     *Auth

	// PublicOrigin builds redirect URLs when the request has no Origin header.
	PublicOrigin string
}

type checkoutURLResponse struct {
	URL      string `json:"url"`
	TicketID string `json:"ticket_id,omitempty"`
}

func (h *PaymentHandler) origin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	return h.PublicOrigin
}

// sessionIdentity picks up the signed-in user, falling back to a guest.
func (h *PaymentHandler) sessionIdentity(r *http.Request) (userID, email, name string) {
	user, err := h.Auth.CurrentUser(r)
	if err != nil || user == nil {
		return "guest", "", "Guest"
	}
	return user.ID, user.Email, user.Name
}

func (h *PaymentHandler) checkoutErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, payments.ErrNotConfigured) {
		slog.Error("checkout requested without Stripe credentials")
	} else {
		slog.Error("failed to create checkout session", "error", err)
	}
	ErrorResponse(w, http.StatusInternalServerError, "Failed to create checkout session")
}

type productCheckoutRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ProductCheckout handles POST /api/checkout/product
func (h *PaymentHandler) ProductCheckout(w http.ResponseWriter, r *http.Request) {
	var req productCheckoutRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProductID == "" {
		ErrorResponse(w, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity <= 0 {
		ErrorResponse(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	// Entity lookup happens before any external call
	product, err := h.Store.GetProductByID(r.Context(), req.ProductID)
	if err != nil {
		storeErrorResponse(w, err, "Product not found")
		return
	}

	userID, userEmail, userName := h.sessionIdentity(r)
	origin := h.origin(r)

	url, err := h.Checkout.CreateCheckoutSession(r.Context(), payments.SessionParams{
		UserID:        userID,
		CustomerEmail: userEmail,
		CustomerName:  userName,
		Items: []payments.LineItem{{
			Name:     product.Name,
			Amount:   payments.MinorUnits(product.Price),
			Quantity: int64(req.Quantity),
		}},
		SuccessURL: origin + "/shop?payment=success",
		CancelURL:  origin + "/shop?payment=cancelled",
		Metadata: map[string]string{
			"type":         "product",
			"product_id":   product.ID,
			"product_name": product.Name,
			"quantity":     strconv.Itoa(req.Quantity),
		},
	})
	if err != nil {
		h.checkoutErrorResponse(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, checkoutURLResponse{URL: url})
}

type workshopCheckoutRequest struct {
	WorkshopID string  `json:"workshop_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
}

// WorkshopCheckout handles POST /api/checkout/workshop. A pending ticket is
// recorded before the session is built; its id travels in the session
// metadata so the webhook can confirm it after payment.
func (h *PaymentHandler) WorkshopCheckout(w http.ResponseWriter, r *http.Request) {
	var req workshopCheckoutRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.WorkshopID == "" {
		ErrorResponse(w, http.StatusBadRequest, "workshop_id is required")
		return
	}
	if req.Quantity <= 0 {
		ErrorResponse(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}
	if req.TotalPrice <= 0 {
		ErrorResponse(w, http.StatusBadRequest, "Total price must be positive")
		return
	}
	if req.Name == "" {
		ErrorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !isValidEmail(req.Email) {
		ErrorResponse(w, http.StatusBadRequest, "Valid email is required")
		return
	}

	workshop, err := h.Store.GetWorkshopByID(r.Context(), req.WorkshopID)
	if err != nil {
		storeErrorResponse(w, err, "Workshop not found")
		return
	}

	userID, _, _ := h.sessionIdentity(r)
	ticket := &models.WorkshopTicket{
		ID:         uuid.NewString(),
		WorkshopID: workshop.ID,
		Email:      req.Email,
		Name:       req.Name,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
		Status:     models.TicketPending,
	}
	if userID != "guest" {
		ticket.UserID = userID
	}
	if err := h.Store.CreateTicket(r.Context(), ticket); err != nil {
		slog.Error("failed to create ticket for checkout", "workshop_id", workshop.ID, "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}

	origin := h.origin(r)
	url, err := h.Checkout.CreateCheckoutSession(r.Context(), payments.SessionParams{
		UserID:        userID,
		CustomerEmail: req.Email,
		CustomerName:  req.Name,
		Items: []payments.LineItem{{
			Name:     fmt.Sprintf("%s - %d ticket(s)", workshop.Title, req.Quantity),
			Amount:   payments.MinorUnits(req.TotalPrice),
			Quantity: 1,
		}},
		SuccessURL: origin + "/workshops?payment=success",
		CancelURL:  origin + "/workshops?payment=cancelled",
		Metadata: map[string]string{
			"type":           "workshop",
			"workshop_id":    workshop.ID,
			"workshop_title": workshop.Title,
			"quantity":       strconv.Itoa(req.Quantity),
			"ticket_id":      ticket.ID,
		},
	})
	if err != nil {
		h.checkoutErrorResponse(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, checkoutURLResponse{URL: url, TicketID: ticket.ID})
}

type serviceCheckoutRequest struct {
	Service       string  `json:"service"`
	Amount        float64 `json:"amount"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
}

// ServiceCheckout handles POST /api/checkout/service (mural and commission
// deposits).
func (h *PaymentHandler) ServiceCheckout(w http.ResponseWriter, r *http.Request) {
	var req serviceCheckoutRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Service == "" {
		ErrorResponse(w, http.StatusBadRequest, "Service is required")
		return
	}
	if req.Amount <= 0 {
		ErrorResponse(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if req.CustomerName == "" {
		ErrorResponse(w, http.StatusBadRequest, "Customer name is required")
		return
	}
	if !isValidEmail(req.CustomerEmail) {
		ErrorResponse(w, http.StatusBadRequest, "Valid customer email is required")
		return
	}

	userID, _, _ := h.sessionIdentity(r)
	origin := h.origin(r)

	url, err := h.Checkout.CreateCheckoutSession(r.Context(), payments.SessionParams{
		UserID:        userID,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Items: []payments.LineItem{{
			Name:     req.Service + " Deposit",
			Amount:   payments.MinorUnits(req.Amount),
			Quantity: 1,
		}},
		SuccessURL: origin + "/services?payment=success",
		CancelURL:  origin + "/services?payment=cancelled",
		Metadata: map[string]string{
			"type":           "service",
			"service":        req.Service,
			"customer_name":  req.CustomerName,
			"customer_email": req.CustomerEmail,
		},
	})
	if err != nil {
		h.checkoutErrorResponse(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, checkoutURLResponse{URL: url})
}

// StripeWebhook handles POST /api/stripe/webhook. A verified
// checkout.session.completed event confirms the referenced workshop ticket or
// decrements product stock. Store failures return 500 so Stripe retries.
func (h *PaymentHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Failed to read payload")
		return
	}

	completed, err := h.Webhook.ParseCompletedCheckout(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		slog.Warn("rejected stripe webhook", "error", err)
		ErrorResponse(w, http.StatusBadRequest, "Invalid webhook")
		return
	}
	if completed == nil {
		// Event type we do not act on
		JSONResponse(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	switch completed.Metadata["type"] {
	case "workshop":
		ticketID := completed.Metadata["ticket_id"]
		if ticketID == "" {
			slog.Warn("completed workshop checkout without ticket_id", "session_id", completed.SessionID)
			break
		}
		if err := h.Store.UpdateTicketStatus(r.Context(), ticketID, models.TicketConfirmed); err != nil {
			slog.Error("failed to confirm ticket", "ticket_id", ticketID, "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Failed to confirm booking")
			return
		}
		slog.Info("ticket confirmed by payment", "ticket_id", ticketID, "session_id", completed.SessionID)

	case "product":
		productID := completed.Metadata["product_id"]
		quantity, _ := strconv.Atoi(completed.Metadata["quantity"])
		if quantity <= 0 {
			quantity = 1
		}
		if productID == "" {
			slog.Warn("completed product checkout without product_id", "session_id", completed.SessionID)
			break
		}
		if err := h.Store.DecrementProductStock(r.Context(), productID, quantity); err != nil {
			slog.Error("failed to decrement stock", "product_id", productID, "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Failed to record purchase")
			return
		}
		slog.Info("product stock decremented by payment", "product_id", productID, "quantity", quantity)
	}

	JSONResponse(w, http.StatusOK, map[string]bool{"received": true})
}
