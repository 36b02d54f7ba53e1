// Package article provides the entry reader view for the TUI. Statute
// articles show their full text; glossary entries show the summary.
package article

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/lexa-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// chrome is the number of rows used by the header and footer.
const chrome = 7

// View shows one corpus entry in a scrollable viewport.
type View struct {
	styles         *styles.Styles
	articleService driving.ArticleService
	actions        driving.ArticleActionService
	ctx            context.Context

	viewport viewport.Model
	key      string
	record   *domain.DefinitionRecord
	width    int
	height   int
	ready    bool
	loading  bool
	err      error
	notice   string
}

// NewView creates a new article view.
func NewView(s *styles.Styles, articleService driving.ArticleService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:         s,
		articleService: articleService,
		ctx:            context.Background(),
		viewport:       viewport.New(80, 24-chrome),
		width:          80,
		height:         24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// WithActions enables the copy and open-source keys.
func (v *View) WithActions(actions driving.ArticleActionService) *View {
	v.actions = actions
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open clears the view and returns the command that loads key.
func (v *View) Open(key string) tea.Cmd {
	v.key = key
	v.record = nil
	v.err = nil
	v.notice = ""
	v.loading = true
	v.viewport.SetContent("")
	v.viewport.GotoTop()

	ctx, svc := v.ctx, v.articleService
	return func() tea.Msg {
		if svc == nil {
			return messages.ArticleLoaded{Key: key, Err: ErrNoArticleService}
		}
		rec, err := svc.Lookup(ctx, key)
		return messages.ArticleLoaded{Key: key, Record: rec, Err: err}
	}
}

// Update handles messages for the article view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ArticleLoaded:
		if msg.Key != v.key {
			return v, nil
		}
		v.loading = false
		v.err = msg.Err
		v.record = msg.Record
		v.refresh()
		return v, nil

	case messages.ActionCompleted:
		if msg.Key != v.key {
			return v, nil
		}
		if msg.Err != nil {
			v.notice = "Error: " + msg.Err.Error()
		} else {
			v.notice = msg.Action
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSearch}
			}
		case "home", "g":
			v.viewport.GotoTop()
			return v, nil
		case "end", "G":
			v.viewport.GotoBottom()
			return v, nil
		case "y":
			if v.actions == nil {
				return v, nil
			}
			return v, v.runAction("Copied to clipboard", v.actions.CopyToClipboard)
		case "o":
			if v.actions == nil || v.record == nil || !v.record.HasFullText() {
				return v, nil
			}
			return v, v.runAction("Opened source in browser", v.actions.OpenSource)
		}
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// runAction returns a command running fn on the current entry. It is a
// no-op until the entry has loaded.
func (v *View) runAction(done string, fn func(context.Context, string) error) tea.Cmd {
	if v.record == nil {
		return nil
	}
	ctx, key := v.ctx, v.key
	return func() tea.Msg {
		return messages.ActionCompleted{Key: key, Action: done, Err: fn(ctx, key)}
	}
}

// refresh wraps the body to the current width and loads it into the viewport.
func (v *View) refresh() {
	if v.record == nil {
		v.viewport.SetContent("")
		return
	}
	wrap := lipgloss.NewStyle().Width(max(v.width-4, 20))
	v.viewport.SetContent(wrap.Render(body(v.record)))
}

// body is the summary, followed by the statute text when present.
func body(rec *domain.DefinitionRecord) string {
	if !rec.HasFullText() {
		return rec.Summary
	}
	return rec.Summary + "\n\n" + strings.TrimSpace(rec.FullText)
}

// View renders the article view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	title := v.key
	if v.record != nil {
		title = v.record.Title()
	}
	b.WriteString(v.styles.Title.Render(title))
	if v.record != nil {
		b.WriteString(" " + v.styles.Badge(v.record.Class()))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(max(v.width-4, 0), 60)))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	default:
		b.WriteString(v.viewport.View())
	}

	b.WriteString("\n\n")
	if v.notice != "" {
		b.WriteString(v.styles.Muted.Render(v.notice) + "\n")
	}
	if v.viewport.TotalLineCount() > v.viewport.Height {
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("[%3.f%%] ", v.viewport.ScrollPercent()*100)))
	}
	hints := "[↑/↓/PgUp/PgDn] scroll  [g/G] top/bottom"
	if v.actions != nil {
		hints += "  [y] copy"
		if v.record != nil && v.record.HasFullText() {
			hints += "  [o] source"
		}
	}
	b.WriteString(v.styles.Help.Render(hints + "  [esc] back"))

	return b.String()
}

// SetDimensions sets the view dimensions and rewraps the content.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.viewport.Width = width
	v.viewport.Height = max(height-chrome, 1)
	v.refresh()
}

// Key returns the key being shown.
func (v *View) Key() string {
	return v.key
}

// Record returns the loaded entry, or nil.
func (v *View) Record() *domain.DefinitionRecord {
	return v.record
}

// Err returns the last load error.
func (v *View) Err() error {
	return v.err
}

// Loading reports whether a load is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Notice returns the outcome of the last action.
func (v *View) Notice() string {
	return v.notice
}

// Offset returns the viewport's vertical scroll offset.
func (v *View) Offset() int {
	return v.viewport.YOffset
}
