package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Ensure ArticleService implements the interface.
var _ driving.ArticleService = (*ArticleService)(nil)

// ArticleService resolves annotation keys to corpus entries.
type ArticleService struct {
	lexicon *Lexicon
}

// NewArticleService creates a new article service.
func NewArticleService(lexicon *Lexicon) *ArticleService {
	return &ArticleService{lexicon: lexicon}
}

// Lookup returns the entry for key. Keys are normalised, so "Artigo 23"
// and "art. 23" resolve to the same entry.
func (s *ArticleService) Lookup(ctx context.Context, key string) (*domain.DefinitionRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: empty key", domain.ErrInvalidInput)
	}

	corpus, err := s.lexicon.Corpus()
	if err != nil {
		return nil, err
	}
	rec, ok := corpus.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("term %q: %w", key, domain.ErrNotFound)
	}
	return &rec, nil
}

// FullText returns a citation-class entry for the "view full text" action.
func (s *ArticleService) FullText(ctx context.Context, key string) (*domain.DefinitionRecord, error) {
	rec, err := s.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if !rec.HasFullText() {
		return nil, fmt.Errorf("term %q: %w", key, domain.ErrNotCitation)
	}
	return rec, nil
}
