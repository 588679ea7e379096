package catalog

import "time"

// #region book
// Book is one catalog record: a title plus the URL it was fetched from.
type Book struct {
	ID        string
	Title     string
	SourceURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// #endregion book
