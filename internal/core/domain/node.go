package domain

import "strings"

// NodeKind discriminates the two node variants.
type NodeKind int

const (
	// TextNode is a leaf carrying raw text.
	TextNode NodeKind = iota

	// ElementNode is a structural node with a tag and ordered children.
	ElementNode
)

// Attribute is a single element attribute.
type Attribute struct {
	Key string
	Val string
}

// Node is one node of a rendered message tree: either Text(string) or
// Element(tag, children). Trees handed to the annotator are treated as
// immutable; annotation builds a new tree and may share unchanged subtrees.
type Node struct {
	Kind NodeKind

	// Text is the raw text of a TextNode.
	Text string

	// Tag is the lowercase element name of an ElementNode, e.g. "p", "strong".
	Tag string

	// Attrs holds element attributes in document order.
	Attrs []Attribute

	// Children are the ordered child nodes of an ElementNode.
	Children []*Node

	// Annotation is the interactive payload attached to an annotation wrapper.
	// It is nil for every other node and never contributes text content.
	Annotation *Annotation
}

// NewText creates a text leaf.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// NewFragment creates an element without a tag. A fragment groups siblings
// and renders as its children only.
func NewFragment(children ...*Node) *Node {
	return &Node{Kind: ElementNode, Children: children}
}

// IsFragment reports whether the node is a tagless grouping element.
func (n *Node) IsFragment() bool {
	return n.Kind == ElementNode && n.Tag == ""
}

// NewElement creates an element with the given children.
func NewElement(tag string, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: strings.ToLower(tag), Children: children}
}

// IsText reports whether the node is a text leaf.
func (n *Node) IsText() bool {
	return n.Kind == TextNode
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent concatenates the text of all leaves below n in document order.
// Annotation payloads are not part of the text content.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.writeText(&b, 0)
	return b.String()
}

// MaxTreeDepth bounds recursion over document trees. Deeper subtrees are
// treated as malformed.
const MaxTreeDepth = 256

func (n *Node) writeText(b *strings.Builder, depth int) {
	if n == nil || depth > MaxTreeDepth {
		return
	}
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.writeText(b, depth+1)
	}
}
