package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/edulens/edulens-api/internal/api/shared"
	"github.com/edulens/edulens-api/internal/platform/logger"
	"github.com/edulens/edulens-api/internal/redact"
	"github.com/edulens/edulens-api/internal/service"
)

// TextbookHandler handles textbook label and wordbook requests.
type TextbookHandler struct {
	textbookService service.TextbookService
	logger          *slog.Logger
}

// NewTextbookHandler creates a new TextbookHandler
func NewTextbookHandler(textbookService service.TextbookService, logger *slog.Logger) *TextbookHandler {
	if textbookService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("textbookService cannot be nil for TextbookHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TextbookHandler")
	}

	return &TextbookHandler{
		textbookService: textbookService,
		logger:          logger.With(slog.String("component", "textbook_handler")),
	}
}

// NormalizeLabels handles POST /api/textbooks/normalize requests.
func (h *TextbookHandler) NormalizeLabels(w http.ResponseWriter, r *http.Request) {
	var req LabelsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	names, err := h.textbookService.Normalize(r.Context(), req.Labels)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NormalizeResponse{Names: names})
}

// GroupLabels handles POST /api/textbooks/group requests.
func (h *TextbookHandler) GroupLabels(w http.ResponseWriter, r *http.Request) {
	var req LabelsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	grouping, err := h.textbookService.Group(r.Context(), req.Labels)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, grouping)
}

// ListWordbooks handles GET /api/wordbooks requests.
func (h *TextbookHandler) ListWordbooks(w http.ResponseWriter, r *http.Request) {
	books := h.textbookService.Wordbooks(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, WordbookListResponse{Wordbooks: books})
}

// GetWordbook handles GET /api/wordbooks/{slug} requests.
func (h *TextbookHandler) GetWordbook(w http.ResponseWriter, r *http.Request) {
	book, err := h.textbookService.Wordbook(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// GetUnit handles GET /api/wordbooks/{slug}/units/{unit} requests.
func (h *TextbookHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	unit, err := getPathInt(r, "unit")
	if err != nil {
		log.Debug("invalid unit", slog.String("value", redact.Truncate(chi.URLParam(r, "unit"), 20)))
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.textbookService.Unit(r.Context(), chi.URLParam(r, "slug"), unit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}

// ListPages handles GET /api/wordbooks/{slug}/pages requests.
func (h *TextbookHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	pages, err := h.textbookService.Pages(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PagesResponse{Slug: slug, Pages: pages})
}
