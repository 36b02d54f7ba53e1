package domain

import (
	"fmt"
	"strings"
)

// TermClass distinguishes statute articles from plain glossary entries.
type TermClass int

const (
	// ClassGlossary is an entry with a short summary only (tooltip).
	ClassGlossary TermClass = iota

	// ClassCitation is a statute article carrying verbatim full text.
	ClassCitation
)

// String returns the string representation.
func (c TermClass) String() string {
	switch c {
	case ClassGlossary:
		return "glossary"
	case ClassCitation:
		return "citation"
	default:
		return unknownDescription
	}
}

// DefinitionRecord is one corpus entry.
type DefinitionRecord struct {
	// Key is the lowercase term as authored in the corpus, e.g. "art. 23".
	Key string

	// Summary is the short prose shown in a hover annotation.
	Summary string

	// FullText is the verbatim statute text. Empty for glossary entries.
	FullText string
}

// HasFullText reports whether the record carries statute text.
func (r *DefinitionRecord) HasFullText() bool {
	return r.FullText != ""
}

// Class returns the record's class, derived from the presence of full text.
func (r *DefinitionRecord) Class() TermClass {
	if r.HasFullText() {
		return ClassCitation
	}
	return ClassGlossary
}

// Content returns the searchable body: summary followed by the full text.
func (r *DefinitionRecord) Content() string {
	if !r.HasFullText() {
		return r.Summary
	}
	return r.Summary + " " + r.FullText
}

// Title returns the humanised key used as a display title.
func (r *DefinitionRecord) Title() string {
	return HumanizeKey(r.Key)
}

// Validate checks the record is usable as a corpus entry.
func (r *DefinitionRecord) Validate() error {
	if strings.TrimSpace(r.Key) == "" {
		return fmt.Errorf("%w: empty key", ErrCorpusInvalid)
	}
	if strings.TrimSpace(r.Summary) == "" {
		return fmt.Errorf("%w: %q has no summary", ErrCorpusInvalid, r.Key)
	}
	return nil
}
