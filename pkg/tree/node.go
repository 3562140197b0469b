package tree

import "sync/atomic"

// ID identifies a node for the lifetime of the process.
type ID uint64

var lastID atomic.Uint64

func nextID() ID { return ID(lastID.Add(1)) }

// Inset is padding around a node's content. It is carried through decoration
// but does not influence layout yet.
type Inset struct {
	Top, Right, Bottom, Left int
}

// EmptyInset is the zero inset.
var EmptyInset = Inset{}

// Node is the capability set every tree node provides.
type Node interface {
	// ID returns the node's identity handle.
	ID() ID
	// Content returns the (possibly multi-line) text to draw.
	Content() string
	// Children returns the ordered children. Callers must not modify it.
	Children() []Node
	// MutableChildren returns the children slice itself so decoration can
	// replace individual slots. Its length must not be changed.
	MutableChildren() []Node
	// Insets returns the node's padding.
	Insets() Inset
	// Decorable reports whether decorators may rewrite this node's content.
	Decorable() bool
	// Placeholder reports whether the node only reserves space.
	Placeholder() bool

	node()
}

// Simple is a plain node with content and children.
type Simple struct {
	id       ID
	content  string
	inset    Inset
	children []Node
}

// New returns a node with the given content and no inset.
func New(content string) *Simple {
	return NewWithInset(content, EmptyInset)
}

// NewWithInset returns a node with the given content and inset.
func NewWithInset(content string, inset Inset) *Simple {
	return &Simple{id: nextID(), content: content, inset: inset}
}

// Add appends children in order and returns n for chaining. Nil children are
// ignored.
func (n *Simple) Add(children ...Node) *Simple {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

func (n *Simple) ID() ID                  { return n.id }
func (n *Simple) Content() string         { return n.content }
func (n *Simple) Children() []Node        { return n.children }
func (n *Simple) MutableChildren() []Node { return n.children }
func (n *Simple) Insets() Inset           { return n.inset }
func (n *Simple) Decorable() bool         { return true }
func (n *Simple) Placeholder() bool       { return false }
func (n *Simple) node()                   {}

// PlaceholderContent is the fixed content of a [PlaceholderNode].
const PlaceholderContent = "PLACEHOLDER"

// PlaceholderNode reserves horizontal space without a real subtree.
// Printers hide placeholders unless asked to display them.
type PlaceholderNode struct {
	id ID
}

// NewPlaceholder returns a new placeholder node.
func NewPlaceholder() *PlaceholderNode {
	return &PlaceholderNode{id: nextID()}
}

func (p *PlaceholderNode) ID() ID                  { return p.id }
func (p *PlaceholderNode) Content() string         { return PlaceholderContent }
func (p *PlaceholderNode) Children() []Node        { return nil }
func (p *PlaceholderNode) MutableChildren() []Node { return nil }
func (p *PlaceholderNode) Insets() Inset           { return EmptyInset }
func (p *PlaceholderNode) Decorable() bool         { return false }
func (p *PlaceholderNode) Placeholder() bool       { return true }
func (p *PlaceholderNode) node()                   {}

// Walk visits root and its descendants in pre-order. Returning false from fn
// skips the node's children.
func Walk(root Node, fn func(n Node, depth int) bool) {
	walk(root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root Node) int {
	n := 0
	Walk(root, func(Node, int) bool {
		n++
		return true
	})
	return n
}
