package handler

import (
	"net/http"

	"designlab/internal/container"
	"designlab/internal/domain"

	"github.com/go-chi/chi/v5"
)

// DocumentHandler handles document rendering requests
type DocumentHandler struct {
	container *container.Container
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(container *container.Container) *DocumentHandler {
	return &DocumentHandler{
		container: container,
	}
}

// Render handles POST /api/documents/{name}
func (h *DocumentHandler) Render(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.RenderDocumentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	doc, err := h.container.Services.Documents.Render(r.Context(), chi.URLParam(r, "name"), req.Elements)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, doc, "Document saved", logger)
}

// Get handles GET /api/documents/{name}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	doc, err := h.container.Services.Documents.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, doc, "", logger)
}

// RenderLegacy handles POST /api/documents/legacy
func (h *DocumentHandler) RenderLegacy(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.LegacyRenderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, h.container.Services.Documents.LegacyRender(req.Segments), "", logger)
}
