package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// Ensure CorpusService implements the interface.
var _ driving.CorpusService = (*CorpusService)(nil)

// CorpusService exposes the loaded corpus and keeps it in sync with its file.
type CorpusService struct {
	lexicon *Lexicon
	watcher driven.CorpusWatcher

	// path is the corpus file to watch; empty for the embedded corpus.
	path string

	mu sync.Mutex
}

// NewCorpusService creates a new corpus service.
// The watcher parameter is optional (can be nil).
func NewCorpusService(lexicon *Lexicon, watcher driven.CorpusWatcher, path string) *CorpusService {
	return &CorpusService{
		lexicon: lexicon,
		watcher: watcher,
		path:    path,
	}
}

// Terms returns every entry in load order.
func (s *CorpusService) Terms(ctx context.Context) ([]domain.DefinitionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	corpus, err := s.lexicon.Corpus()
	if err != nil {
		return nil, err
	}
	return corpus.Records(), nil
}

// Reload loads the corpus again. On failure the previous snapshot stays.
func (s *CorpusService) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Section("Corpus Reload")
	return s.lexicon.Load(ctx)
}

// Watch reloads on every change to the corpus file until ctx is done.
// Without a file or a watcher it returns nil immediately.
func (s *CorpusService) Watch(ctx context.Context) error {
	if s.watcher == nil || s.path == "" {
		logger.Debug("Corpus watch disabled (path=%q, watcher=%t)", s.path, s.watcher != nil)
		return nil
	}

	err := s.watcher.Watch(s.path, func() {
		if err := s.Reload(ctx); err != nil {
			logger.Warn("corpus reload failed, keeping previous snapshot: %v", err)
		}
	})
	if err != nil {
		return err
	}
	logger.Info("Watching corpus file %s", s.path)

	go func() {
		<-ctx.Done()
		if err := s.watcher.Stop(); err != nil {
			logger.Warn("stop corpus watcher: %v", err)
		}
	}()
	return nil
}
