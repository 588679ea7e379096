package explorer

import (
	"context"
	"errors"

	"github.com/juliamirani/gutenberg-explorer/internal/analysis"
	"github.com/juliamirani/gutenberg-explorer/internal/catalog"
)

// #region errors
var (
	// ErrEmptyTitle is returned when a search is attempted with a blank title.
	ErrEmptyTitle = errors.New("empty title")
	// ErrEmptyURL is returned when a load is attempted with a blank URL.
	ErrEmptyURL = errors.New("empty url")
)

// #endregion errors

// #region fetcher

// Fetcher downloads a document's full text. Implemented by fetch.Fetcher.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// #endregion fetcher

// #region result

// Result is the outcome of one explorer operation, ready for display.
type Result struct {
	Book    catalog.Book
	Entries []analysis.Entry
	Created bool
	Message string
}

// #endregion result
