// Package server provides the HTTP surface: an HTML form page mirroring the
// original explorer UI plus a small JSON API.
package server

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/juliamirani/gutenberg-explorer/internal/analysis"
	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
	"github.com/juliamirani/gutenberg-explorer/internal/explorer"
	"github.com/juliamirani/gutenberg-explorer/internal/fetch"
)

// page is the template context for the form page.
type page struct {
	TitleQuery      string
	URLQuery        string
	Book            *catalog.Book
	WordFrequencies []analysis.Entry
	Message         string
	Error           string
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Project Gutenberg Word Explorer</title>
    <style>
        body { font-family: Georgia, serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; }
        form { margin: 1rem 0; }
        input[type=text] { width: 60%; padding: 0.4rem; }
        .error { color: #a00; }
        .message { color: #060; }
        table { border-collapse: collapse; margin-top: 1rem; }
        th, td { border: 1px solid #ccc; padding: 0.3rem 0.8rem; text-align: left; }
    </style>
</head>
<body>
    <h1>Project Gutenberg Word Explorer</h1>

    {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
    {{if .Message}}<p class="message">{{.Message}}</p>{{end}}

    <form method="post">
        <label>Search the local catalog by title:</label><br>
        <input type="text" name="title" value="{{.TitleQuery}}" placeholder="e.g. Moby Dick">
        <button type="submit" name="search_title" value="1">Search</button>
    </form>

    <form method="post">
        <label>Or load a Project Gutenberg text URL:</label><br>
        <input type="text" name="url" value="{{.URLQuery}}" placeholder="https://www.gutenberg.org/files/2701/2701-0.txt">
        <button type="submit" name="load_url" value="1">Load</button>
    </form>

    {{if .Book}}
    <h2>{{.Book.Title}}</h2>
    {{if .Book.SourceURL}}<p><a href="{{.Book.SourceURL}}">{{.Book.SourceURL}}</a></p>{{end}}
    {{if .WordFrequencies}}
    <table>
        <tr><th>Word</th><th>Frequency</th></tr>
        {{range .WordFrequencies}}<tr><td>{{.Word}}</td><td>{{.Count}}</td></tr>
        {{end}}
    </table>
    {{end}}
    {{end}}
</body>
</html>`))

// #region server

// Server bundles the handler with an http.Server.
type Server struct {
	handler *Handler
	logger  *slog.Logger
	addr    string
}

// NewServer creates a Server listening on addr.
func NewServer(exp *explorer.Explorer, store *catalog.Store, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handler: NewHandler(exp, store, logger),
		logger:  logger,
		addr:    addr,
	}
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	s.handler.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("explorer server starting", "addr", s.addr)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// #endregion server

// --- Form page ---

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, page{})
}

func (h *Handler) handleForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	switch {
	case r.PostForm.Has("search_title"):
		h.formSearch(w, r)
	case r.PostForm.Has("load_url"):
		h.formLoad(w, r)
	default:
		h.renderPage(w, page{})
	}
}

func (h *Handler) formSearch(w http.ResponseWriter, r *http.Request) {
	title := r.PostFormValue("title")
	p := page{TitleQuery: title}

	res, err := h.exp.SearchByTitle(title)
	switch {
	case errors.Is(err, explorer.ErrEmptyTitle):
		p.Error = "Please enter a book title."
	case errors.Is(err, catalog.ErrNotFound):
		p.Message = notFoundHint
	case err != nil:
		h.logger.Error("search failed", "title", title, "error", err)
		p.Error = "Something went wrong searching the catalog."
	default:
		p.Book = &res.Book
		p.WordFrequencies = res.Entries
		p.Message = res.Message
	}
	h.renderPage(w, p)
}

func (h *Handler) formLoad(w http.ResponseWriter, r *http.Request) {
	url := r.PostFormValue("url")
	p := page{URLQuery: url}

	res, err := h.exp.LoadFromURL(r.Context(), url)
	switch {
	case errors.Is(err, explorer.ErrEmptyURL):
		p.Error = "Please enter a Project Gutenberg text URL."
	case errors.Is(err, fetch.ErrFetch):
		h.logger.Warn("fetch failed", "url", url, "error", err)
		p.Error = fetchFailedMessage
	case err != nil:
		h.logger.Error("load failed", "url", url, "error", err)
		p.Error = "Book was not found. Please check the Project Gutenberg URL is correct."
	default:
		h.logger.Info("book analyzed", "title", res.Book.Title, "created", res.Created)
		p.Book = &res.Book
		p.WordFrequencies = res.Entries
		p.Message = res.Message
	}
	h.renderPage(w, p)
}

func (h *Handler) renderPage(w http.ResponseWriter, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, p); err != nil {
		h.logger.Error("render failed", "error", err)
	}
}
