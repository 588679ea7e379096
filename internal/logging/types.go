package logging

import "time"

// #region analysis-entry
// AnalysisEntry is a single row in the analysis_log table.
type AnalysisEntry struct {
	BookID        string
	SourceURL     string
	Action        string // "created" | "updated"
	TokenCount    int
	DistinctWords int
	TopJSON       string
	Reason        string
	CreatedAt     time.Time
}

// #endregion analysis-entry
