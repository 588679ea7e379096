package analysis

import "strings"

// DefaultTitle is returned when a document carries no "Title:" header line.
const DefaultTitle = "Unknown Title"

// #region extract-title

// ExtractTitle scans lines in order for a case-insensitive "title:" prefix
// and returns the trimmed remainder after the first colon. Gutenberg plain
// text files carry this header near the top of the file.
func ExtractTitle(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(strings.ToLower(line), "title:") {
			continue
		}
		if _, rest, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return DefaultTitle
}

// #endregion extract-title
