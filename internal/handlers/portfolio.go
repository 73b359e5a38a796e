package handlers

import (
	"log/slog"
	"net/http"

	"github.com/contactscalebreakers-dev/website.supabase/internal/models"
	"github.com/contactscalebreakers-dev/website.supabase/internal/store"
)

type PortfolioHandler struct {
	Store *store.Store
}

// List handles GET /api/portfolio?category=
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListPortfolioItems(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		slog.Error("failed to list portfolio items", "error", err)
		ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}
	if items == nil {
		items = []models.PortfolioItem{}
	}
	JSONResponse(w, http.StatusOK, items)
}
