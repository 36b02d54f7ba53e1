package mcp

import (
	"context"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results []domain.SearchResult
	err     error
	opts    domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.opts = opts
	return m.results, m.err
}

// mockAnnotationService is a mock implementation of driving.AnnotationService.
// annotate defaults to returning the input unchanged.
type mockAnnotationService struct {
	annotate func(root *domain.Node) *domain.Node
	err      error
}

func (m *mockAnnotationService) Annotate(_ context.Context, root *domain.Node) (*domain.Node, error) {
	if m.err != nil {
		return root, m.err
	}
	if m.annotate == nil {
		return root, nil
	}
	return m.annotate(root), nil
}

func (m *mockAnnotationService) FindSpans(_ context.Context, _ string) ([]domain.MatchSpan, error) {
	return nil, m.err
}

// mockArticleService is a mock implementation of driving.ArticleService.
type mockArticleService struct {
	records map[string]domain.DefinitionRecord
	err     error
}

func (m *mockArticleService) Lookup(_ context.Context, key string) (*domain.DefinitionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[domain.NormalizeKey(key)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (m *mockArticleService) FullText(ctx context.Context, key string) (*domain.DefinitionRecord, error) {
	rec, err := m.Lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	if !rec.HasFullText() {
		return nil, domain.ErrNotCitation
	}
	return rec, nil
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	records []domain.DefinitionRecord
	err     error
}

func (m *mockCorpusService) Terms(_ context.Context) ([]domain.DefinitionRecord, error) {
	return m.records, m.err
}

func (m *mockCorpusService) Reload(_ context.Context) error {
	return m.err
}

func (m *mockCorpusService) Watch(_ context.Context) error {
	return m.err
}

var (
	_ driving.SearchService     = (*mockSearchService)(nil)
	_ driving.AnnotationService = (*mockAnnotationService)(nil)
	_ driving.ArticleService    = (*mockArticleService)(nil)
	_ driving.CorpusService     = (*mockCorpusService)(nil)
)

func testRecords() []domain.DefinitionRecord {
	return []domain.DefinitionRecord{
		{Key: "fiador", Summary: "Garante as dívidas do locatário."},
		{Key: "art. 23", Summary: "Obrigações do locatário.", FullText: "Art. 23 - O locatário é obrigado a pagar o aluguel."},
	}
}

func newMockArticleService() *mockArticleService {
	m := &mockArticleService{records: make(map[string]domain.DefinitionRecord)}
	for _, r := range testRecords() {
		m.records[domain.NormalizeKey(r.Key)] = r
	}
	return m
}

// newTestPorts returns ports with every service mocked.
func newTestPorts() *Ports {
	return &Ports{
		Search:     &mockSearchService{},
		Annotation: &mockAnnotationService{},
		Article:    newMockArticleService(),
		Corpus:     &mockCorpusService{records: testRecords()},
	}
}
