// Package tui provides the interactive terminal glossary browser for lexa.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Search ranks glossary entries for the live search view.
	Search driving.SearchService

	// Article loads one entry for the article view.
	Article driving.ArticleService

	// Corpus is optional. When set, the menu shows the entry count.
	Corpus driving.CorpusService

	// Actions is optional. When set, the article view can copy entries
	// and open citation sources.
	Actions driving.ArticleActionService
}

// NewPorts creates a Ports aggregate with the required services.
func NewPorts(search driving.SearchService, article driving.ArticleService) *Ports {
	return &Ports{Search: search, Article: article}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Article == nil {
		return ErrMissingArticleService
	}
	return nil
}
