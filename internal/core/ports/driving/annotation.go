package driving

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// AnnotationService rewrites rendered message trees, wrapping recognised
// legal terms with emphasis or interactive annotations.
type AnnotationService interface {
	// Annotate returns a new tree with every recognised term wrapped.
	// The input tree is not modified. Unchanged subtrees may be shared.
	// Malformed subtrees are left unchanged rather than reported.
	Annotate(ctx context.Context, root *domain.Node) (*domain.Node, error)

	// FindSpans locates terms in a single text, in rune offsets.
	FindSpans(ctx context.Context, text string) ([]domain.MatchSpan, error)
}
