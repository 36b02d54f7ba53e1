package driving

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// SearchService provides glossary search to external actors.
type SearchService interface {
	// Search ranks corpus entries against query by title and content distance.
	// Queries shorter than domain.MinQueryLength return an empty result.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}
