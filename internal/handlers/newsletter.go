package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type NewsletterHandler struct {
	Store *store.Store
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe handles POST /api/newsletter/subscribe. A repeat subscription for
// the same address is a conflict.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !isValidEmail(req.Email) {
		ErrorResponse(w, http.StatusBadRequest, "Valid email is required")
		return
	}

	sub := &models.NewsletterSubscription{
		ID:     uuid.NewString(),
		Email:  req.Email,
		Name:   req.Name,
		Status: models.NewsletterSubscribed,
	}
	if err := h.Store.SubscribeNewsletter(r.Context(), sub); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			ErrorResponse(w, http.StatusConflict, "Email already subscribed")
			return
		}
		slog.Error("failed to subscribe to newsletter", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}

	JSONResponse(w, http.StatusCreated, successResponse{Success: true})
}
