package analysis

// #region stopwords
// stopwords contains common English function words excluded from frequency
// ranking: pronouns, articles, conjunctions, prepositions, auxiliaries,
// fillers, a few very common verbs, quantifiers, and small number words.
var stopwords = map[string]bool{
	// pronouns
	"i": true, "you": true, "he": true, "she": true, "it": true,
	"we": true, "they": true, "me": true, "him": true, "her": true,
	"us": true, "them": true, "my": true, "your": true, "yours": true,
	"his": true, "its": true, "our": true, "ours": true, "their": true,
	"theirs": true,

	// articles / determiners
	"a": true, "an": true, "the": true, "this": true, "that": true,
	"these": true, "those": true,

	// coordinating conjunctions
	"and": true, "or": true, "but": true, "so": true, "yet": true,
	"for": true, "nor": true,

	// subordinating conjunctions
	"because": true, "although": true, "since": true, "while": true,
	"as": true, "if": true, "when": true, "though": true, "which": true,

	// prepositions
	"in": true, "on": true, "at": true, "by": true, "to": true,
	"from": true, "of": true, "off": true, "out": true, "over": true,
	"under": true, "up": true, "down": true, "with": true, "without": true,
	"into": true, "about": true, "before": true, "after": true,
	"between": true, "through": true, "during": true,

	// auxiliary verbs
	"is": true, "am": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "can": true,
	"could": true, "shall": true, "should": true, "will": true,
	"would": true, "may": true, "might": true, "must": true,

	// adverbs / fillers
	"very": true, "just": true, "then": true, "there": true, "here": true,
	"again": true, "like": true, "now": true, "how": true, "where": true,
	"why": true, "who": true, "what": true,

	// common verbs
	"go": true, "went": true, "come": true, "came": true, "said": true,
	"took": true, "get": true, "got": true, "make": true, "made": true,
	"see": true, "saw": true, "know": true, "take": true, "give": true,
	"gave": true,

	// quantifiers
	"all": true, "any": true, "some": true, "no": true, "not": true,
	"away": true,

	// common numbers
	"one": true, "two": true, "three": true,
}

// #endregion stopwords

// IsStopword reports whether the lowercase word is in the stopword set.
func IsStopword(word string) bool {
	return stopwords[word]
}
