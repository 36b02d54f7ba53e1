package mcp

import (
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search ranks glossary entries.
	Search driving.SearchService

	// Annotation wraps legal terms in HTML answers.
	Annotation driving.AnnotationService

	// Article resolves keys to entries for the full-text view.
	Article driving.ArticleService

	// Corpus lists the loaded entries. Optional.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Annotation == nil {
		return ErrMissingAnnotationService
	}
	if p.Article == nil {
		return ErrMissingArticleService
	}
	return nil
}
