package driven

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// DraftStore persists saved answer drafts.
type DraftStore interface {
	// Save stores a draft. Returns domain.ErrAlreadyExists on ID collision.
	Save(ctx context.Context, draft *domain.Draft) error

	// Get retrieves a draft by ID. Returns domain.ErrNotFound if missing.
	Get(ctx context.Context, id string) (*domain.Draft, error)

	// List returns all drafts, newest first.
	List(ctx context.Context) ([]domain.Draft, error)

	// Delete removes a draft. Returns domain.ErrNotFound if missing.
	Delete(ctx context.Context, id string) error
}
