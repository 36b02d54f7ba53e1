package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexa-cli/internal/logger"
)

// Ensure AnnotationService implements the interface.
var _ driving.AnnotationService = (*AnnotationService)(nil)

// Markup produced around recognised terms.
const (
	emphasisTag  = "strong"
	annotatedTag = "span"

	// AnnotatedClass marks the interactive wrapper of a known term.
	AnnotatedClass = "legal-term"

	// TermKeyAttr carries the lookup key on the interactive wrapper.
	TermKeyAttr = "data-article-key"
)

// AnnotationService wraps recognised legal terms in rendered message trees.
type AnnotationService struct {
	lexicon  *Lexicon
	settings domain.AnnotateSettings
}

// NewAnnotationService creates a new annotation service.
// Zero-valued settings fall back to domain defaults.
func NewAnnotationService(lexicon *Lexicon, settings domain.AnnotateSettings) *AnnotationService {
	defaults := domain.DefaultAppSettings().Annotate
	if settings.MaxTextBytes <= 0 {
		settings.MaxTextBytes = defaults.MaxTextBytes
	}
	if settings.SearchURL == "" {
		settings.SearchURL = defaults.SearchURL
	}
	if settings.SourceQueryPrefix == "" {
		settings.SourceQueryPrefix = defaults.SourceQueryPrefix
	}
	return &AnnotationService{lexicon: lexicon, settings: settings}
}

// Annotate returns a rewritten copy of root. Text leaves outside exempt
// parents are split into plain text runs and term wrappers; everything else
// is shared with the input. A text root that gains wrappers is returned as a
// fragment. Malformed subtrees are logged and left unchanged.
func (s *AnnotationService) Annotate(ctx context.Context, root *domain.Node) (out *domain.Node, err error) {
	if root == nil {
		return nil, nil
	}
	snap, err := s.lexicon.snapshot()
	if err != nil {
		return root, err
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("annotation aborted: %v", r)
			out, err = root, nil
		}
	}()

	a := &annotator{
		ctx:      ctx,
		snap:     snap,
		settings: &s.settings,
		onPath:   make(map[*domain.Node]struct{}),
	}

	if root.IsText() {
		repl := a.rewriteText(root)
		if repl == nil {
			return root, ctx.Err()
		}
		return domain.NewFragment(repl...), ctx.Err()
	}

	out = a.rewriteElement(root, 0)
	if err := ctx.Err(); err != nil {
		return root, err
	}
	return out, nil
}

// FindSpans locates and classifies terms in text.
func (s *AnnotationService) FindSpans(ctx context.Context, text string) ([]domain.MatchSpan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap, err := s.lexicon.snapshot()
	if err != nil {
		return nil, err
	}
	if len(text) > s.settings.MaxTextBytes {
		return nil, fmt.Errorf("%w: text is %d bytes, limit %d", domain.ErrInvalidInput, len(text), s.settings.MaxTextBytes)
	}
	return snap.pattern.FindSpans(text, snap.corpus)
}

// annotator carries the state of one Annotate call.
type annotator struct {
	ctx      context.Context
	snap     *snapshot
	settings *domain.AnnotateSettings

	// onPath holds the elements between the root and the current node.
	onPath map[*domain.Node]struct{}
}

// rewriteElement returns n itself when nothing below it changed, otherwise a
// shallow copy with rewritten children.
func (a *annotator) rewriteElement(n *domain.Node, depth int) *domain.Node {
	if depth > domain.MaxTreeDepth {
		logger.Warn("%v: depth exceeds %d at <%s>, subtree skipped", domain.ErrMalformedTree, domain.MaxTreeDepth, n.Tag)
		return n
	}
	if _, seen := a.onPath[n]; seen {
		logger.Warn("%v: cycle at <%s>, subtree skipped", domain.ErrMalformedTree, n.Tag)
		return n
	}
	a.onPath[n] = struct{}{}
	defer delete(a.onPath, n)

	exempt := domain.IsExemptTag(n.Tag)
	var children []*domain.Node
	changed := false

	for i, child := range n.Children {
		var repl []*domain.Node
		switch {
		case child == nil:
			logger.Warn("%v: nil child %d of <%s>, skipped", domain.ErrMalformedTree, i, n.Tag)
		case child.IsText():
			if !exempt && a.ctx.Err() == nil {
				repl = a.rewriteText(child)
			}
		default:
			if next := a.rewriteElement(child, depth+1); next != child {
				repl = []*domain.Node{next}
			}
		}

		if repl != nil && !changed {
			changed = true
			children = make([]*domain.Node, 0, len(n.Children)+len(repl))
			children = append(children, n.Children[:i]...)
		}
		switch {
		case repl != nil:
			children = append(children, repl...)
		case changed:
			children = append(children, child)
		}
	}

	if !changed {
		return n
	}
	clone := *n
	clone.Children = children
	return &clone
}

// rewriteText splits a leaf around its matches. It returns nil when the leaf
// stays as it is.
func (a *annotator) rewriteText(leaf *domain.Node) []*domain.Node {
	if len(leaf.Text) > a.settings.MaxTextBytes {
		logger.Warn("text leaf of %d bytes exceeds %d, left unannotated", len(leaf.Text), a.settings.MaxTextBytes)
		return nil
	}

	spans, err := a.snap.pattern.FindSpans(leaf.Text, a.snap.corpus)
	if err != nil {
		logger.Warn("text leaf left unannotated: %v", err)
		return nil
	}
	if len(spans) == 0 {
		return nil
	}

	runes := []rune(leaf.Text)
	out := make([]*domain.Node, 0, 2*len(spans)+1)
	pos := 0
	for i := range spans {
		sp := &spans[i]
		if sp.Start > pos {
			out = append(out, domain.NewText(string(runes[pos:sp.Start])))
		}
		out = append(out, a.wrap(sp, string(runes[sp.Start:sp.End])))
		pos = sp.End
	}
	if pos < len(runes) {
		out = append(out, domain.NewText(string(runes[pos:])))
	}
	return out
}

// wrap builds the replacement for one match. Unknown terms get plain
// emphasis; known terms get an interactive wrapper around the emphasis.
func (a *annotator) wrap(sp *domain.MatchSpan, literal string) *domain.Node {
	emphasis := domain.NewElement(emphasisTag, domain.NewText(literal))
	if !sp.Known() {
		return emphasis
	}

	rec := sp.Record
	ann := &domain.Annotation{
		Key:     sp.NormalizedKey,
		Title:   rec.Title(),
		Class:   rec.Class(),
		Summary: rec.Summary,
	}
	if rec.Class() == domain.ClassCitation {
		ann.FullTextAction = true
		ann.SourceURL = a.settings.SourceURL(domain.CitationLabel(sp.NormalizedKey))
	}

	wrapper := domain.NewElement(annotatedTag, emphasis)
	wrapper.Attrs = []domain.Attribute{
		{Key: "class", Val: AnnotatedClass},
		{Key: TermKeyAttr, Val: sp.NormalizedKey},
	}
	wrapper.Annotation = ann
	return wrapper
}
