package domain

// exemptTags lists parents whose text is never annotated: links, code,
// preformatted blocks and every emphasis wrapper, including the ones the
// annotator produces itself.
var exemptTags = map[string]struct{}{
	"a":      {},
	"code":   {},
	"pre":    {},
	"strong": {},
	"b":      {},
	"i":      {},
	"em":     {},
}

// IsExemptTag reports whether text directly inside tag must be left alone.
func IsExemptTag(tag string) bool {
	_, ok := exemptTags[tag]
	return ok
}

// MatchSpan is a located, classified occurrence of a term inside one text leaf.
// Offsets are rune offsets into the original leaf text, half-open.
type MatchSpan struct {
	Start int
	End   int

	// MatchedText is the literal matched substring, case preserved.
	MatchedText string

	// NormalizedKey is the lookup form of MatchedText.
	NormalizedKey string

	// Record is the corpus entry the match resolved to; nil when unknown.
	Record *DefinitionRecord
}

// Known reports whether the span resolved to a corpus entry.
func (s *MatchSpan) Known() bool {
	return s.Record != nil
}

// Annotation is the interactive payload carried by a known-term wrapper.
type Annotation struct {
	// Key is the normalised lookup key the host resolves on "view full text".
	Key string

	// Title is the humanised key, e.g. "ARTIGO 23".
	Title string

	// Class is the class of the resolved entry.
	Class TermClass

	// Summary is the tooltip body.
	Summary string

	// FullTextAction is true when the host should offer "view full text".
	FullTextAction bool

	// SourceURL is the external "search source" link; empty for glossary entries.
	SourceURL string
}
