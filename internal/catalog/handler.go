package catalog

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/platform/httpx"
)

// Handler wires the product command surface onto HTTP routes.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs the catalog handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Put("/{id}", h.handleUpdate)
		r.Post("/{id}/advance", h.handleAdvance)
		r.Post("/{id}/trash", h.handleTrash)
		r.Post("/{id}/restore", h.handleRestore)
		r.Delete("/{id}", h.handlePurge)
	})
}

// handleList serves the shop views. The view query parameter selects
// which slice of the collection the client sees: active (default),
// booked, trash, or all.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var products []Product
	switch view := r.URL.Query().Get("view"); view {
	case "", "active":
		products = h.service.Active()
	case "booked":
		products = h.service.Booked()
	case "trash":
		products = h.service.Trashed()
	case "all":
		products = h.service.Snapshot()
	default:
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "unknown view: "+view)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	product, err := h.service.Create(r.Context(), form.draft())
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, product)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid request body")
		return
	}
	if err := h.validator.Struct(form); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	record := Product{
		ID:             id,
		ItemName:       form.ItemName,
		Category:       Category(form.Category),
		InvestmentCost: form.InvestmentCost,
		SellingPrice:   form.SellingPrice,
		StockQuantity:  form.StockQuantity,
		Status:         Status(form.Status),
	}
	product, err := h.service.Update(r.Context(), record)
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Advance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) handleTrash(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.SoftDelete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) handlePurge(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Purge(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}
	httpx.NoContent(w)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, ErrInvalidCategory), errors.Is(err, ErrInvalidStatus):
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
	default:
		h.logger.Error("catalog request failed", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
