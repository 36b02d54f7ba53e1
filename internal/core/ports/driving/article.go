package driving

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// ArticleService resolves annotation keys back to corpus entries.
// It backs the "view full text" action.
type ArticleService interface {
	// Lookup returns the entry for key, of either class.
	// Returns domain.ErrNotFound if no entry matches.
	Lookup(ctx context.Context, key string) (*domain.DefinitionRecord, error)

	// FullText returns a citation-class entry.
	// Returns domain.ErrNotCitation for glossary entries.
	FullText(ctx context.Context, key string) (*domain.DefinitionRecord, error)
}
