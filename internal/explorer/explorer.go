// Package explorer wires fetch, analysis, and the catalog into the two user
// operations: search the local catalog by title, and load a book from a URL.
package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/juliamirani/gutenberg-explorer/internal/analysis"
	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
	"github.com/juliamirani/gutenberg-explorer/internal/logging"
)

// DefaultLimit is how many top words are stored and shown per book.
const DefaultLimit = 10

// #region explorer

// Explorer orchestrates the fetch → analyze → persist pipeline.
type Explorer struct {
	store   *catalog.Store
	fetcher Fetcher
	limit   int
	logger  *slog.Logger
}

// New creates an Explorer. limit <= 0 falls back to DefaultLimit; a nil
// logger falls back to slog.Default.
func New(store *catalog.Store, fetcher Fetcher, limit int, logger *slog.Logger) *Explorer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Explorer{store: store, fetcher: fetcher, limit: limit, logger: logger}
}

// #endregion explorer

// #region search

// SearchByTitle looks up a book by case-insensitive exact title and returns
// its stored frequencies. A miss surfaces catalog.ErrNotFound so the caller
// can suggest loading the book by URL instead.
func (e *Explorer) SearchByTitle(title string) (Result, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Result{}, ErrEmptyTitle
	}

	book, err := e.store.GetByTitle(title)
	if err != nil {
		return Result{}, err
	}

	entries, err := e.store.Frequencies(book.ID, e.limit)
	if err != nil {
		return Result{}, err
	}

	result := Result{Book: book, Entries: entries}
	if len(entries) == 0 {
		result.Message = "Book found in database, but no word frequencies stored."
	}
	return result, nil
}

// #endregion search

// #region load

// LoadFromURL fetches a document, extracts its title, computes its top
// words, and persists the book with its frequency entries, replacing any
// prior analysis. One failed step aborts the whole operation.
func (e *Explorer) LoadFromURL(ctx context.Context, url string) (Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Result{}, ErrEmptyURL
	}

	text, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		return Result{}, err
	}

	title := analysis.ExtractTitle(text)
	tokens := analysis.Normalize(text)
	top := analysis.TopWords(tokens, e.limit)

	book, created, err := e.store.SaveAnalysis(title, url, top)
	if err != nil {
		return Result{}, fmt.Errorf("save analysis: %w", err)
	}

	e.logRun(book, url, created, tokens, top)

	result := Result{Book: book, Entries: top, Created: created}
	if created {
		result.Message = fmt.Sprintf("Loaded '%s' from Project Gutenberg and added to the database.", book.Title)
	} else {
		result.Message = fmt.Sprintf("Updated '%s' in the database with new word frequencies.", book.Title)
	}
	return result, nil
}

// logRun records the analysis in the audit table. A logging failure does not
// fail the user-visible operation.
func (e *Explorer) logRun(book catalog.Book, url string, created bool, tokens []string, top []analysis.Entry) {
	distinct := make(map[string]struct{}, len(tokens))
	for _, w := range tokens {
		distinct[w] = struct{}{}
	}

	action := "updated"
	if created {
		action = "created"
	}
	topJSON, _ := json.Marshal(top)

	err := logging.LogAnalysis(e.store.DB(), logging.AnalysisEntry{
		BookID:        book.ID,
		SourceURL:     url,
		Action:        action,
		TokenCount:    len(tokens),
		DistinctWords: len(distinct),
		TopJSON:       string(topJSON),
	})
	if err != nil {
		e.logger.Warn("analysis log write failed", "book_id", book.ID, "error", err)
	}
}

// #endregion load
