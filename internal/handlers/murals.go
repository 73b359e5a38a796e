package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type MuralHandler struct {
	Store *store.Store
}

type muralRequestInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	WallSize        string `json:"wall_size"`
	WallCondition   string `json:"wall_condition"`
	Theme           string `json:"theme"`
	Inspiration     string `json:"inspiration"`
	Timeline        string `json:"timeline"`
	Budget          string `json:"budget"`
	AdditionalNotes string `json:"additional_notes"`
}

// Submit handles POST /api/mural-requests. Only name and email are required;
// every other project attribute is optional.
func (h *MuralHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req muralRequestInput
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

	request := &models.MuralRequest{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Location:        req.Location,
		WallSize:        req.WallSize,
		WallCondition:   req.WallCondition,
		Theme:           req.Theme,
		Inspiration:     req.Inspiration,
		Timeline:        req.Timeline,
		Budget:          req.Budget,
		AdditionalNotes: req.AdditionalNotes,
		Status:          models.MuralNew,
	}
	if err := h.Store.CreateMuralRequest(r.Context(), request); err != nil {
		slog.Error("failed to create mural request", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Failed to submit mural request")
		return
	}

	slog.Info("mural request submitted", "request_id", request.ID)
	JSONResponse(w, http.StatusCreated, successResponse{Success: true, ID: request.ID})
}
