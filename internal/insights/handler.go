package insights

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/platform/httpx"
)

// Handler serves narrative report requests.
type Handler struct {
	service *Service
}

// NewHandler constructs the insights handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MountRoutes registers insights routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/insights/report", h.handleReport)
}

type reportResponse struct {
	Report string `json:"report"`
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, reportResponse{Report: h.service.Report(r.Context())})
}
