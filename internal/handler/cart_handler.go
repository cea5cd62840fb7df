package handler

import (
	"net/http"

	"designlab/internal/container"
	"designlab/internal/domain"

	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart checkout requests
type CartHandler struct {
	container *container.Container
}

// NewCartHandler creates a new cart handler
func NewCartHandler(container *container.Container) *CartHandler {
	return &CartHandler{
		container: container,
	}
}

// Checkout handles POST /api/carts
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	resp, err := h.container.Services.Carts.Checkout(r.Context(), &req)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp, "Cart saved", logger)
}

// Get handles GET /api/carts/{cartID}
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	snapshot, err := h.container.Services.Carts.Get(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, snapshot, "", logger)
}
