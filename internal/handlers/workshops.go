package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/contactscalebreakers-dev/website.supabase/internal/email"
	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type WorkshopHandler struct {
	Store  *store.Store
	Mailer email.Sender
}

// List handles GET /api/workshops (newest date first).
func (h *WorkshopHandler) List(w http.ResponseWriter, r *http.Request) {
	workshops, err := h.Store.ListWorkshops(r.Context())
	if err != nil {
		slog.Error("failed to list workshops", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if workshops == nil {
		workshops = []models.Workshop{}
	}
	JSONResponse(w, http.StatusOK, workshops)
}

// GetByID handles GET /api/workshops/{id}
func (h *WorkshopHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	workshop, err := h.Store.GetWorkshopByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeErrorResponse(w, err, "Workshop not found")
		return
	}
	JSONResponse(w, http.StatusOK, workshop)
}

type bookWorkshopRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Quantity int    `json:"quantity"`
}

// Book handles POST /api/workshops/{id}/book. It records a pending ticket for
// the workshop and sends the booking confirmation email; payment confirmation
// later moves the ticket to confirmed via the Stripe webhook.
func (h *WorkshopHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req bookWorkshopRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
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
	if req.Quantity <= 0 {
		ErrorResponse(w, http.StatusBadRequest, "Quantity must be positive")
		return
	}

	workshop, err := h.Store.GetWorkshopByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeErrorResponse(w, err, "Workshop not found")
		return
	}

	ticket := &models.WorkshopTicket{
		ID:         uuid.NewString(),
		WorkshopID: workshop.ID,
		Email:      req.Email,
		Name:       req.Name,
		Quantity:   req.Quantity,
		TotalPrice: workshop.Price * float64(req.Quantity),
		Status:     models.TicketPending,
	}
	if err := h.Store.CreateTicket(r.Context(), ticket); err != nil {
		slog.Error("failed to create workshop ticket", "workshop_id", workshop.ID, "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to book workshop")
		return
	}

	html := email.BookingConfirmationEmail(req.Name, workshop.Title, workshop.Date.Format("Monday, 2 January 2006"), req.Quantity, ticket.TotalPrice)
	if !h.Mailer.Send(r.Context(), req.Email, "Workshop Booking Confirmation - "+workshop.Title, html) {
		slog.Warn("booking confirmation email not sent", "ticket_id", ticket.ID, "to", req.Email)
	}

	slog.Info("workshop booked", "ticket_id", ticket.ID, "workshop_id", workshop.ID, "quantity", req.Quantity)
	JSONResponse(w, http.StatusCreated, successResponse{
		Success: true,
		ID:      ticket.ID,
		Message: "Booking confirmed! Check your email for details.",
	})
}
