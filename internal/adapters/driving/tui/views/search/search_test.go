package search

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// MockSearchService implements driving.SearchService for testing.
type MockSearchService struct {
	SearchFunc func(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
	queries    []string
}

func (m *MockSearchService) Search(
	ctx context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.queries = append(m.queries, query)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, opts)
	}
	return []domain.SearchResult{}, nil
}

func testSearchResults() []domain.SearchResult {
	return []domain.SearchResult{
		{Key: "fiador", DisplayTitle: "FIADOR", ContentPreview: "Pessoa que garante.", Score: 12, Class: domain.ClassGlossary},
		{Key: "art. 37", DisplayTitle: "ARTIGO 37", ContentPreview: "Modalidades de garantia.", Score: 8, Class: domain.ClassCitation},
	}
}

func newReadyView(svc *MockSearchService) *View {
	v := NewView(styles.DefaultStyles(), keymap.DefaultKeyMap(), svc, 0)
	v.SetDimensions(100, 30)
	return v
}

func typeText(v *View, s string) tea.Cmd {
	var last tea.Cmd
	for _, r := range s {
		_, last = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return last
}

// runSearch executes the batched command and returns the SearchCompleted it produced.
func runSearch(t *testing.T, cmd tea.Cmd) messages.SearchCompleted {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		// The search command is batched last, after the cursor blink.
		for i := len(batch) - 1; i >= 0; i-- {
			if batch[i] == nil {
				continue
			}
			if done, ok := batch[i]().(messages.SearchCompleted); ok {
				return done
			}
		}
		t.Fatal("no search command in batch")
	}
	done, ok := msg.(messages.SearchCompleted)
	require.True(t, ok, "got %T", msg)
	return done
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil, 3)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.NotNil(t, v.keymap)
	assert.Equal(t, 3, v.limit)
	assert.True(t, v.InputFocused())
	assert.False(t, v.Ready())
	assert.Equal(t, "Initialising...", v.View())
	assert.NotNil(t, v.Init())
}

func TestView_WithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	var seen context.Context
	svc := &MockSearchService{SearchFunc: func(ctx context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
		seen = ctx
		return nil, nil
	}}
	v := newReadyView(svc).WithContext(ctx)

	runSearch(t, v.SetQuery("fiador"))

	assert.Equal(t, "v", seen.Value(ctxKey{}))
}

func TestView_Update_WindowSize(t *testing.T) {
	v := NewView(nil, nil, nil, 0)

	v.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.True(t, v.Ready())
	assert.Equal(t, 120, v.Width())
	assert.Equal(t, 40, v.Height())
}

func TestView_TypingSearchesLive(t *testing.T) {
	svc := &MockSearchService{SearchFunc: func(_ context.Context, _ string, _ domain.SearchOptions) ([]domain.SearchResult, error) {
		return testSearchResults(), nil
	}}
	v := newReadyView(svc)

	typeText(v, "fi")
	assert.Empty(t, svc.queries, "short queries do not search")
	done := runSearch(t, typeText(v, "a"))

	assert.Equal(t, "fia", done.Query)
	assert.Equal(t, []string{"fia"}, svc.queries)

	v.Update(done)
	assert.Len(t, v.Results(), 2)
	assert.Equal(t, "fiador", v.SelectedResult().Key)
}

func TestView_PassesLimit(t *testing.T) {
	var got domain.SearchOptions
	svc := &MockSearchService{SearchFunc: func(_ context.Context, _ string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
		got = opts
		return nil, nil
	}}
	v := NewView(nil, nil, svc, 4)

	runSearch(t, v.SetQuery("locador"))

	assert.Equal(t, 4, got.Limit)
}

func TestView_StaleResultsIgnored(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")

	v.Update(messages.SearchCompleted{Query: "fia", Results: testSearchResults()})

	assert.Empty(t, v.Results())
}

func TestView_ShortQueryClearsResults(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})
	require.Len(t, v.Results(), 2)

	cmd := v.SetQuery("fi")

	assert.Nil(t, cmd)
	assert.Empty(t, v.Results())
	assert.Contains(t, v.View(), "at least 3 characters")
}

func TestView_SearchError(t *testing.T) {
	v := newReadyView(&MockSearchService{SearchFunc: func(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
		return nil, domain.ErrCorpusUnavailable
	}})

	done := runSearch(t, v.SetQuery("fiador"))
	v.Update(done)

	assert.ErrorIs(t, v.Err(), domain.ErrCorpusUnavailable)
	assert.Contains(t, v.View(), "Error")
}

func TestView_NoService(t *testing.T) {
	v := NewView(nil, nil, nil, 0)

	cmd := v.SetQuery("fiador")
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, ErrNoSearchService)

	v.Update(msg)
	assert.ErrorIs(t, v.Err(), ErrNoSearchService)
}

func TestView_SuccessClearsError(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")
	v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})

	assert.NoError(t, v.Err())
}

func TestView_EscReturnsToMenu(t *testing.T) {
	v := newReadyView(&MockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, msg.View)
}

func TestView_EnterOpensSelected(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("garantia")
	v.Update(messages.SearchCompleted{Query: "garantia", Results: testSearchResults()})

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(messages.ArticleSelected)
	require.True(t, ok)
	assert.Equal(t, "art. 37", msg.Key)
}

func TestView_EnterWithoutResults(t *testing.T) {
	v := newReadyView(&MockSearchService{})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_TabTogglesFocus(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	tab := tea.KeyMsg{Type: tea.KeyTab}

	v.Update(tab)
	assert.True(t, v.InputFocused(), "no results to focus")

	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})

	v.Update(tab)
	assert.False(t, v.InputFocused())

	v.Update(tab)
	assert.True(t, v.InputFocused())
}

func TestView_LettersNavigateOnlyInResults(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})
	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	v.Update(j)
	assert.Equal(t, "fiadorj", v.Query())

	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	v.Update(j)

	assert.Equal(t, "fiador", v.Query())
	assert.Equal(t, "art. 37", v.SelectedResult().Key)

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, "fiador", v.SelectedResult().Key)
}

func TestView_View(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})

	out := v.View()

	assert.Contains(t, out, "Lexa")
	assert.Contains(t, out, "FIADOR")
	assert.Contains(t, out, "ARTIGO 37")
	assert.Contains(t, out, "2 results")
}

func TestView_Reset(t *testing.T) {
	v := newReadyView(&MockSearchService{})
	v.SetQuery("fiador")
	v.Update(messages.SearchCompleted{Query: "fiador", Results: testSearchResults()})
	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	v.Reset()

	assert.Empty(t, v.Query())
	assert.Empty(t, v.Results())
	assert.True(t, v.InputFocused())
	assert.NoError(t, v.Err())
}
