package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

// JSONResponse writes data as a JSON body with the given status.
func JSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// ErrorResponse writes a typed error body: {"error": "..."}.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, map[string]string{"error": message})
}

// ParseJSONBody decodes a request body into dst.
func ParseJSONBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// storeErrorResponse maps persistence failures onto the error taxonomy:
// not-found, conflict, or internal.
func storeErrorResponse(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ErrorResponse(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrDuplicate):
		ErrorResponse(w, http.StatusConflict, "Duplicate entry")
	default:
		slog.Error("store call failed", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

type successResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}
