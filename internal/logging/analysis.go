package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-analysis
// LogAnalysis writes one row to the analysis_log table, recording what a
// load-from-URL run produced for a book.
func LogAnalysis(db *sql.DB, entry AnalysisEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO analysis_log (book_id, source_url, action, token_count, distinct_words, top_json, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.BookID,
		nullIfEmpty(entry.SourceURL),
		entry.Action,
		entry.TokenCount,
		entry.DistinctWords,
		nullIfEmpty(entry.TopJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log analysis: %w", err)
	}
	return nil
}

// #endregion log-analysis

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
