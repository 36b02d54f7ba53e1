package html

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

// Attributes written on annotation wrappers.
const (
	AttrTitle     = "title"
	AttrTermTitle = "data-term-title"
	AttrTermClass = "data-term-class"
	AttrSourceURL = "data-source-url"
	AttrFullText  = "data-full-text"
)

// bodyContext is the context element fragments are parsed in.
var bodyContext = &nethtml.Node{Type: nethtml.ElementNode, Data: "body", DataAtom: atom.Body}

// Parse reads an HTML fragment and returns it as a fragment node whose
// children are the top-level nodes of the input. Comments and doctypes are
// dropped.
func Parse(r io.Reader) (*domain.Node, error) {
	nodes, err := nethtml.ParseFragment(r, bodyContext)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	root := domain.NewFragment()
	for _, n := range nodes {
		child, err := fromHTML(n, 1)
		if err != nil {
			return nil, err
		}
		if child != nil {
			root.Children = append(root.Children, child)
		}
	}
	return root, nil
}

// ParseString parses an HTML fragment held in a string.
func ParseString(s string) (*domain.Node, error) {
	return Parse(strings.NewReader(s))
}

func fromHTML(n *nethtml.Node, depth int) (*domain.Node, error) {
	if depth > domain.MaxTreeDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", domain.ErrMalformedTree, domain.MaxTreeDepth)
	}

	switch n.Type {
	case nethtml.TextNode:
		return domain.NewText(n.Data), nil
	case nethtml.ElementNode:
		el := domain.NewElement(n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Attrs = append(el.Attrs, domain.Attribute{Key: key, Val: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			child, err := fromHTML(c, depth+1)
			if err != nil {
				return nil, err
			}
			if child != nil {
				el.Children = append(el.Children, child)
			}
		}
		return el, nil
	default:
		return nil, nil
	}
}

// Render writes root as HTML. Fragments render as their children only.
func Render(w io.Writer, root *domain.Node) error {
	if root == nil {
		return ErrNilNode
	}

	var tops []*domain.Node
	if root.IsFragment() {
		tops = root.Children
	} else {
		tops = []*domain.Node{root}
	}

	for _, n := range tops {
		if n == nil {
			continue
		}
		hn, err := toHTML(n, 0)
		if err != nil {
			return err
		}
		if err := nethtml.Render(w, hn); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}
	return nil
}

// RenderString renders root to a string.
func RenderString(root *domain.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTML(n *domain.Node, depth int) (*nethtml.Node, error) {
	if depth > domain.MaxTreeDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", domain.ErrMalformedTree, domain.MaxTreeDepth)
	}
	if n.IsText() {
		return &nethtml.Node{Type: nethtml.TextNode, Data: n.Text}, nil
	}

	var out *nethtml.Node
	if n.IsFragment() {
		// Nested fragments are flattened into a document node, which
		// nethtml renders as its children.
		out = &nethtml.Node{Type: nethtml.DocumentNode}
	} else {
		out = &nethtml.Node{
			Type:     nethtml.ElementNode,
			Data:     n.Tag,
			DataAtom: atom.Lookup([]byte(n.Tag)),
			Attr:     attributes(n),
		}
	}

	for _, c := range n.Children {
		if c == nil {
			continue
		}
		hc, err := toHTML(c, depth+1)
		if err != nil {
			return nil, err
		}
		out.AppendChild(hc)
	}
	return out, nil
}

// attributes returns the element's own attributes followed by its
// annotation payload, if any.
func attributes(n *domain.Node) []nethtml.Attribute {
	attrs := make([]nethtml.Attribute, 0, len(n.Attrs)+5)
	for _, a := range n.Attrs {
		attrs = append(attrs, nethtml.Attribute{Key: a.Key, Val: a.Val})
	}

	ann := n.Annotation
	if ann == nil {
		return attrs
	}
	attrs = append(attrs,
		nethtml.Attribute{Key: AttrTitle, Val: ann.Summary},
		nethtml.Attribute{Key: AttrTermTitle, Val: ann.Title},
		nethtml.Attribute{Key: AttrTermClass, Val: ann.Class.String()},
	)
	if ann.FullTextAction {
		attrs = append(attrs, nethtml.Attribute{Key: AttrFullText, Val: "true"})
	}
	if ann.SourceURL != "" {
		attrs = append(attrs, nethtml.Attribute{Key: AttrSourceURL, Val: ann.SourceURL})
	}
	return attrs
}
