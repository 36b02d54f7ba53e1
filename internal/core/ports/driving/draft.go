package driving

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// DraftService manages saved answer drafts.
type DraftService interface {
	// Save stores text as a new draft. Empty text is rejected.
	Save(ctx context.Context, text string) (*domain.Draft, error)

	// Get retrieves a draft by ID.
	Get(ctx context.Context, id string) (*domain.Draft, error)

	// List returns all drafts, newest first.
	List(ctx context.Context) ([]domain.Draft, error)

	// Delete removes a draft.
	Delete(ctx context.Context, id string) error
}
