// Package analysis turns raw document text into ranked word frequencies.
package analysis

import (
	"strings"
	"unicode"
)

// #region normalize

// delimiters is the fixed character class replaced by spaces before
// splitting. ASCII only: embedded digits and accented letters stay attached
// to adjacent letters.
const delimiters = ",.;:!?\"'()[]{}-_*/\\\n\r\t"

// Normalize converts raw text into a sequence of candidate words:
// lowercased, punctuation stripped, split on whitespace, keeping only
// all-alphabetic tokens of length >= 2 that are not stopwords.
// Input order is preserved; tokens are not deduplicated.
func Normalize(text string) []string {
	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(delimiters, r) {
			return ' '
		}
		return r
	}, text)

	var tokens []string
	for _, w := range strings.Fields(text) {
		if keep(w) {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

// keep reports whether a split token survives filtering: entirely letters,
// at least two of them, and not a stopword.
func keep(w string) bool {
	letters := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
		letters++
	}
	return letters >= 2 && !stopwords[w]
}

// #endregion normalize
