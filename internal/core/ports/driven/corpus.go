package driven

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// CorpusLoader reads the corpus asset into definition records.
// Records are returned in asset order; both value shapes (bare summary or
// summary plus full text) are unified into domain.DefinitionRecord.
type CorpusLoader interface {
	// Load reads all records.
	// Returns domain.ErrCorpusInvalid if the asset cannot be parsed.
	Load(ctx context.Context) ([]domain.DefinitionRecord, error)

	// Source describes where records come from: a file path, or "embedded".
	Source() string
}

// CorpusWatcher notifies when a corpus file changes.
// Only one Watch call should be active at a time.
type CorpusWatcher interface {
	// Watch starts monitoring path. onChange may be invoked from any goroutine.
	Watch(path string, onChange func()) error

	// Stop ends monitoring. After Stop returns, no further onChange calls
	// will fire. Safe to call multiple times.
	Stop() error
}
