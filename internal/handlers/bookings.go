package handlers

import (
	"log/slog"
	"net/http"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

// BookingHandler exposes the admin view over workshop tickets. Every route is
// wrapped with RequireRole(admin) in the route table.
type BookingHandler struct {
	Store *store.Store
}

// List handles GET /api/admin/bookings (newest first).
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.Store.ListTickets(r.Context())
	if err != nil {
		slog.Error("failed to list bookings", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if tickets == nil {
		tickets = []models.WorkshopTicket{}
	}
	JSONResponse(w, http.StatusOK, tickets)
}

// GetByID handles GET /api/admin/bookings/{id}
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.Store.GetTicketByID(r.Context(), r.PathValue("id"))
	if err != nil {
		storeErrorResponse(w, err, "Booking not found")
		return
	}
	JSONResponse(w, http.StatusOK, ticket)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !models.ValidTicketStatus(req.Status) {
		ErrorResponse(w, http.StatusBadRequest, "Unknown status")
		return
	}

	if err := h.Store.UpdateTicketStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		storeErrorResponse(w, err, "Booking not found")
		return
	}

	slog.Info("booking status updated", "booking_id", r.PathValue("id"), "status", req.Status)
	JSONResponse(w, http.StatusOK, successResponse{Success: true})
}

// Delete handles DELETE /api/admin/bookings/{id}
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteTicket(r.Context(), r.PathValue("id")); err != nil {
		storeErrorResponse(w, err, "Booking not found")
		return
	}
	JSONResponse(w, http.StatusOK, successResponse{Success: true})
}
