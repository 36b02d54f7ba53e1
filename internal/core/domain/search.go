package domain

// MaxSearchResults is the upper bound on results returned for one query.
const MaxSearchResults = 7

// MinQueryLength is the minimum trimmed query length, in characters, that
// produces results. Shorter queries return an empty result set.
const MinQueryLength = 3

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Values outside
	// 1..MaxSearchResults fall back to MaxSearchResults.
	Limit int
}

// EffectiveLimit returns the limit to apply for these options.
func (o SearchOptions) EffectiveLimit() int {
	if o.Limit <= 0 || o.Limit > MaxSearchResults {
		return MaxSearchResults
	}
	return o.Limit
}

// SearchResult represents a single ranked glossary hit.
type SearchResult struct {
	// Key is the corpus key of the matched entry.
	Key string

	// DisplayTitle is the key formatted for humans, e.g. "ARTIGO 23".
	DisplayTitle string

	// ContentPreview is the entry summary.
	ContentPreview string

	// Score is the relevance score (title score plus content score).
	Score float64

	// Class tells the host whether a full-text view is available.
	Class TermClass
}
