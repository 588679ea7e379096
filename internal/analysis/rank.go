package analysis

import "sort"

// #region entry

// Entry pairs a word with its occurrence count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// #endregion entry

// #region top-words

// TopWords counts occurrences in a single scan and returns up to limit
// entries ordered by descending count. Ties keep first-occurrence order,
// which a stable sort over the first-seen sequence guarantees.
func TopWords(tokens []string, limit int) []Entry {
	if limit <= 0 || len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, w := range tokens {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	entries := make([]Entry, len(order))
	for i, w := range order {
		entries[i] = Entry{Word: w, Count: counts[w]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries
}

// #endregion top-words
