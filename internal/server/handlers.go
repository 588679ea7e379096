package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
	"github.com/juliamirani/gutenberg-explorer/internal/explorer"
	"github.com/juliamirani/gutenberg-explorer/internal/fetch"
)

// fetchFailedMessage is the single user-facing message for every fetch
// failure sub-cause.
const fetchFailedMessage = "Book was not found. Please check the URL and try again."

// notFoundHint is shown when a title search misses the local catalog.
const notFoundHint = "Book not found in local database. " +
	"If this is a Project Gutenberg book, paste its text URL below to add it."

// Handler holds HTTP handlers for the word explorer.
type Handler struct {
	exp    *explorer.Explorer
	store  *catalog.Store
	logger *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(exp *explorer.Explorer, store *catalog.Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{exp: exp, store: store, logger: logger}
}

// RegisterRoutes registers all routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// HTML form page.
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /{$}", h.handleForm)

	// JSON API.
	mux.HandleFunc("POST /api/search", h.handleSearch)
	mux.HandleFunc("POST /api/load", h.handleLoad)
	mux.HandleFunc("GET /api/books", h.handleListBooks)
	mux.HandleFunc("GET /api/health", h.handleHealth)
}

// --- JSON API ---

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.exp.SearchByTitle(req.Title)
	switch {
	case errors.Is(err, explorer.ErrEmptyTitle):
		writeError(w, http.StatusBadRequest, "title is required")
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundHint)
	case err != nil:
		h.logger.Error("search failed", "title", req.Title, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, resultPayload(res))
	}
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.exp.LoadFromURL(r.Context(), req.URL)
	switch {
	case errors.Is(err, explorer.ErrEmptyURL):
		writeError(w, http.StatusBadRequest, "url is required")
	case errors.Is(err, fetch.ErrFetch):
		h.logger.Warn("fetch failed", "url", req.URL, "error", err)
		writeError(w, http.StatusBadGateway, fetchFailedMessage)
	case err != nil:
		h.logger.Error("load failed", "url", req.URL, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		h.logger.Info("book analyzed", "title", res.Book.Title, "created", res.Created)
		status := http.StatusOK
		if res.Created {
			status = http.StatusCreated
		}
		writeJSON(w, status, resultPayload(res))
	}
}

func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListBooks(50)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	infos := make([]map[string]interface{}, 0, len(books))
	for _, b := range books {
		infos = append(infos, map[string]interface{}{
			"id":         b.ID,
			"title":      b.Title,
			"source_url": b.SourceURL,
			"updated_at": b.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"books": infos})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func resultPayload(res explorer.Result) map[string]interface{} {
	return map[string]interface{}{
		"book": map[string]interface{}{
			"id":         res.Book.ID,
			"title":      res.Book.Title,
			"source_url": res.Book.SourceURL,
		},
		"word_frequencies": res.Entries,
		"created":          res.Created,
		"message":          res.Message,
	}
}
