package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/views/article"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// corpusCounted carries the number of loaded entries for the menu.
type corpusCounted struct {
	n int
}

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView    *menu.View
	searchView  *search.View
	articleView *article.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		menuView:    menu.NewView(s),
		searchView:  search.NewView(s, km, ports.Search, 0),
		articleView: article.NewView(s, ports.Article).WithActions(ports.Actions),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.articleView.WithContext(ctx)
	return a
}

// WithSearchLimit sets the result limit for the live search.
func (a *App) WithSearchLimit(limit int) *App {
	a.searchView.SetLimit(limit)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("lexa - Lei do Inquilinato"),
		a.countCorpus(),
	)
}

func (a *App) countCorpus() tea.Cmd {
	if a.ports.Corpus == nil {
		return nil
	}
	ctx, corpus := a.ctx, a.ports.Corpus
	return func() tea.Msg {
		terms, err := corpus.Terms(ctx)
		if err != nil {
			return messages.ErrorOccurred{Err: err}
		}
		return corpusCounted{n: len(terms)}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case corpusCounted:
		a.menuView.SetCorpusSize(msg.n)
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
		return a, cmd

	case messages.ArticleSelected:
		a.currentView = messages.ViewArticle
		return a, a.articleView.Open(msg.Key)

	case messages.ArticleLoaded:
		a.articleView, cmd = a.articleView.Update(msg)
		a.err = a.articleView.Err()
		return a, cmd

	case messages.ActionCompleted:
		a.articleView, cmd = a.articleView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		from := a.currentView
		a.currentView = msg.View
		// Coming back from an article keeps the query and results.
		if msg.View == messages.ViewSearch && from != messages.ViewArticle {
			a.searchView.Reset()
			return a, a.searchView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		if a.currentView == messages.ViewSearch {
			a.searchView, cmd = a.searchView.Update(msg)
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		switch msg.String() {
		case "esc":
			a.currentView = messages.ViewMenu
			return a, nil
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.currentView == messages.ViewMenu && msg.String() == "?" {
		a.currentView = messages.ViewHelp
		return a, nil
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewArticle:
		a.articleView, cmd = a.articleView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewArticle:
		return a.articleView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	return `Help

Global:
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  ?           This help
  q           Quit

Search:
  (type)      Results update as you type (3+ characters)
  ↑/↓         Move through results
  tab         Switch between input and results
  enter       Open the selected entry
  esc         Back to menu

Article:
  j/k, ↑/↓    Scroll
  pgup/pgdn   Page
  g/G         Top/bottom
  y           Copy the entry
  o           Open the article's source (articles only)
  esc         Back to search

Keys:
` + a.help.FullHelpView(a.keymap.FullHelp()) + `

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.articleView.SetDimensions(width, height)
}
