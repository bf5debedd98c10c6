package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/platform/httpx"
)

// Handler serves the dashboard summary.
type Handler struct {
	catalog *catalog.Service
}

// NewHandler constructs the analytics handler.
func NewHandler(catalogSvc *catalog.Service) *Handler {
	return &Handler{catalog: catalogSvc}
}

// MountRoutes registers analytics routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/analytics/dashboard", h.handleDashboard)
}

// handleDashboard recomputes the summary from the current active
// collection on every call.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Compute(h.catalog.Active()))
}
