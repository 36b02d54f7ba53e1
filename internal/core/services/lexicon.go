package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// snapshot pairs a corpus with the pattern compiled from it.
// Both are immutable once published.
type snapshot struct {
	corpus  *domain.Corpus
	pattern *Pattern
}

// Lexicon owns the active corpus snapshot shared by search, annotation and
// article lookup. Readers take the current snapshot without locking; a reload
// builds a new snapshot and swaps it in, so calls in flight finish on the old one.
type Lexicon struct {
	loader       driven.CorpusLoader
	matchTimeout time.Duration

	current atomic.Pointer[snapshot]

	// loadMu serialises reloads.
	loadMu sync.Mutex
}

// NewLexicon creates a lexicon reading from loader. No snapshot is active
// until Load succeeds.
func NewLexicon(loader driven.CorpusLoader, matchTimeout time.Duration) *Lexicon {
	return &Lexicon{
		loader:       loader,
		matchTimeout: matchTimeout,
	}
}

// Load reads the corpus through the loader and publishes a new snapshot.
// On failure the active snapshot is kept.
func (l *Lexicon) Load(ctx context.Context) error {
	if l.loader == nil {
		return fmt.Errorf("%w: no corpus loader", domain.ErrCorpusUnavailable)
	}

	logger.Debug("Loading corpus from %s", l.loader.Source())
	records, err := l.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	return l.Replace(records)
}

// Replace compiles records into a new snapshot and publishes it.
func (l *Lexicon) Replace(records []domain.DefinitionRecord) error {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	corpus, err := domain.NewCorpus(records)
	if err != nil {
		return err
	}
	pattern, err := CompilePattern(corpus, l.matchTimeout)
	if err != nil {
		return err
	}

	l.current.Store(&snapshot{corpus: corpus, pattern: pattern})
	logger.Info("Corpus loaded: %d entries, %d pattern terms", corpus.Len(), len(pattern.vocabulary))
	return nil
}

// Source describes where the corpus is loaded from.
func (l *Lexicon) Source() string {
	if l.loader == nil {
		return ""
	}
	return l.loader.Source()
}

// Corpus returns the active corpus.
func (l *Lexicon) Corpus() (*domain.Corpus, error) {
	snap, err := l.snapshot()
	if err != nil {
		return nil, err
	}
	return snap.corpus, nil
}

func (l *Lexicon) snapshot() (*snapshot, error) {
	snap := l.current.Load()
	if snap == nil {
		return nil, domain.ErrCorpusUnavailable
	}
	return snap, nil
}
