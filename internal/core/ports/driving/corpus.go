package driving

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// CorpusService manages the loaded corpus snapshot.
type CorpusService interface {
	// Terms returns every corpus entry in load order.
	Terms(ctx context.Context) ([]domain.DefinitionRecord, error)

	// Reload loads the corpus again and swaps it in atomically.
	// On failure the previous snapshot stays active.
	Reload(ctx context.Context) error

	// Watch starts reloading the corpus whenever its source changes and
	// stops when ctx is done. It does not block. It is a no-op when the
	// corpus is embedded or no watcher is configured.
	Watch(ctx context.Context) error
}
