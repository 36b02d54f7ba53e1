package services

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// Ranking constants.
const (
	titleWeight          = 10.0
	substringScore       = 3.0
	fuzzyContentWeight   = 2.0
	minRelevantScore     = 1.5
	longQueryLength      = 5
	titleThresholdDivide = 5
)

// contentSplitter separates content into words for fuzzy matching.
var contentSplitter = regexp.MustCompile(`[\s,.;\-()]+`)

// SearchService ranks corpus entries against a free-text query.
type SearchService struct {
	lexicon *Lexicon
}

// NewSearchService creates a new search service.
func NewSearchService(lexicon *Lexicon) *SearchService {
	return &SearchService{lexicon: lexicon}
}

// scored holds a ranked entry before conversion to a result.
type scored struct {
	index int
	score float64
}

// Search scores every entry by title distance and content distance and
// returns the best matches, highest score first. Ties keep corpus order.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < domain.MinQueryLength {
		logger.Debug("Query shorter than %d characters, returning no results", domain.MinQueryLength)
		return []domain.SearchResult{}, nil
	}

	snap, err := s.lexicon.snapshot()
	if err != nil {
		return nil, err
	}

	corpus := snap.corpus
	hits := make([]scored, 0, corpus.Len())
	for i := 0; i < corpus.Len(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score := scoreRecord(q, corpus.At(i))
		if score > minRelevantScore {
			hits = append(hits, scored{index: i, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	limit := opts.EffectiveLimit()
	if len(hits) > limit {
		hits = hits[:limit]
	}

	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		rec := corpus.At(h.index)
		results[i] = domain.SearchResult{
			Key:            rec.Key,
			DisplayTitle:   rec.Title(),
			ContentPreview: rec.Summary,
			Score:          h.score,
			Class:          rec.Class(),
		}
	}

	logger.Info("Search returned %d results", len(results))
	return results, nil
}

// scoreRecord returns titleScore + contentScore for a lowercased query.
func scoreRecord(query string, rec *domain.DefinitionRecord) float64 {
	q := []rune(query)
	return titleScore(q, []rune(strings.ToLower(rec.Key))) +
		contentScore(query, q, strings.ToLower(rec.Content()))
}

func titleScore(query, key []rune) float64 {
	if len(key) == 0 {
		return 0
	}
	threshold := max(1, len(query)/titleThresholdDivide)
	d := levenshteinRunes(query, key)
	if d > threshold {
		return 0
	}
	return titleWeight * (1 - float64(d)/float64(len(key)))
}

func contentScore(query string, q []rune, content string) float64 {
	threshold := 1
	if len(q) > longQueryLength {
		threshold = 2
	}

	score := 0.0
	if strings.Contains(content, query) {
		score = substringScore
	}

	best := math.MaxInt
	for _, word := range contentSplitter.Split(content, -1) {
		w := []rune(word)
		if abs(len(w)-len(q)) > threshold {
			continue
		}
		if d := levenshteinRunes(q, w); d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}

	if best <= threshold {
		fuzzy := fuzzyContentWeight * (1 - float64(best)/float64(len(q)))
		score = math.Max(score, fuzzy)
	}
	return score
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
