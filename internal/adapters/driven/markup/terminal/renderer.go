package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// blockTags start and end on their own line.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "ul": {}, "ol": {}, "blockquote": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"pre": {}, "table": {}, "tr": {}, "section": {}, "article": {},
}

// Styles holds the styling applied to terminal output.
type Styles struct {
	Term     lipgloss.Style
	Emphasis lipgloss.Style
	Marker   lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the styles used for interactive terminals.
func DefaultStyles() Styles {
	return Styles{
		Term:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#7C3AED")),
		Emphasis: lipgloss.NewStyle().Bold(true),
		Marker:   lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	}
}

// Renderer writes annotated trees as terminal text.
type Renderer struct {
	styles Styles
	plain  bool
}

// NewRenderer creates a renderer that styles its output.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// NewPlainRenderer creates a renderer without styling.
func NewPlainRenderer() *Renderer {
	return &Renderer{plain: true}
}

// Render writes the body of root followed by its footnotes.
func (r *Renderer) Render(w io.Writer, root *domain.Node) error {
	st := &state{r: r}
	st.node(root, 0)

	body := strings.TrimSpace(collapseBlankLines(st.body.String()))
	if _, err := io.WriteString(w, body+"\n"); err != nil {
		return err
	}
	if len(st.notes) == 0 {
		return nil
	}

	var notes strings.Builder
	notes.WriteString("\n")
	for i, ann := range st.notes {
		r.footnote(&notes, i+1, ann)
	}
	_, err := io.WriteString(w, notes.String())
	return err
}

// RenderString renders root to a string.
func (r *Renderer) RenderString(root *domain.Node) string {
	var b strings.Builder
	_ = r.Render(&b, root)
	return b.String()
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) footnote(b *strings.Builder, n int, ann *domain.Annotation) {
	fmt.Fprintf(b, "%s %s", r.style(r.styles.Marker, fmt.Sprintf("[%d]", n)), r.style(r.styles.Heading, ann.Title))
	b.WriteString(" " + r.style(r.styles.Muted, "("+ann.Class.String()+")"))
	b.WriteString("\n    " + ann.Summary + "\n")
	if ann.FullTextAction {
		b.WriteString("    " + r.style(r.styles.Muted, fmt.Sprintf("full text: lexa article %q", ann.Key)) + "\n")
	}
	if ann.SourceURL != "" {
		b.WriteString("    " + r.style(r.styles.Muted, "source: "+ann.SourceURL) + "\n")
	}
}

// state accumulates one render.
type state struct {
	r     *Renderer
	body  strings.Builder
	notes []*domain.Annotation
}

func (st *state) node(n *domain.Node, depth int) {
	if n == nil || depth > domain.MaxTreeDepth {
		return
	}
	if n.IsText() {
		st.body.WriteString(n.Text)
		return
	}

	if n.Annotation != nil {
		st.notes = append(st.notes, n.Annotation)
		marker := fmt.Sprintf("[%d]", len(st.notes))
		st.body.WriteString(st.r.style(st.r.styles.Term, n.TextContent()))
		st.body.WriteString(st.r.style(st.r.styles.Marker, marker))
		return
	}

	switch n.Tag {
	case "br":
		st.body.WriteString("\n")
		return
	case "strong", "b":
		st.body.WriteString(st.r.style(st.r.styles.Emphasis, n.TextContent()))
		return
	}

	_, block := blockTags[n.Tag]
	if block {
		st.body.WriteString("\n")
	}
	if n.Tag == "li" {
		st.body.WriteString("- ")
	}
	for _, c := range n.Children {
		st.node(c, depth+1)
	}
	if block {
		st.body.WriteString("\n")
	}
}

// collapseBlankLines limits runs of newlines to a single blank line.
func collapseBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
