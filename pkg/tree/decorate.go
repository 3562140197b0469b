package tree

import (
	"strings"

	"github.com/matzehuels/treeprinter/pkg/text"
)

// Strategy rewrites a node's content.
type Strategy interface {
	// Decorate returns the content to draw in place of content.
	Decorate(content string) string
	// WrapChild returns the node to store in the index-th child slot when the
	// decoration is inherited.
	WrapChild(child Node, index int) Node
}

// Decorated wraps a base node. It exposes the base's children, insets and
// placeholder flag unchanged.
type Decorated struct {
	id        ID
	base      Node
	strategy  Strategy
	decorable bool
}

type decorateConfig struct {
	inherit   bool
	decorable *bool
}

// DecorateOption configures [Decorate].
type DecorateOption func(*decorateConfig)

// WithInherit controls whether the strategy wraps each direct child of the
// base node. It defaults to true.
func WithInherit(inherit bool) DecorateOption {
	return func(c *decorateConfig) { c.inherit = inherit }
}

// WithDecorable sets what the decorated node reports from Decorable, which
// decides whether an outer decorator may rewrite it again. It defaults to the
// base node's value.
func WithDecorable(decorable bool) DecorateOption {
	return func(c *decorateConfig) { c.decorable = &decorable }
}

// Decorate wraps base with s. With inheritance enabled the base's child slots
// are replaced by s.WrapChild during this call.
func Decorate(base Node, s Strategy, opts ...DecorateOption) *Decorated {
	cfg := decorateConfig{inherit: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	decorable := base.Decorable()
	if cfg.decorable != nil {
		decorable = *cfg.decorable
	}

	if cfg.inherit {
		children := base.MutableChildren()
		for i, child := range children {
			children[i] = s.WrapChild(child, i)
		}
	}

	return &Decorated{
		id:        nextID(),
		base:      base,
		strategy:  s,
		decorable: decorable,
	}
}

// Base returns the wrapped node.
func (d *Decorated) Base() Node { return d.base }

// Content returns the strategy's output if the base node is decorable and
// the base content otherwise.
func (d *Decorated) Content() string {
	if d.base.Decorable() {
		return d.strategy.Decorate(d.base.Content())
	}
	return d.base.Content()
}

func (d *Decorated) ID() ID                  { return d.id }
func (d *Decorated) Children() []Node        { return d.base.Children() }
func (d *Decorated) MutableChildren() []Node { return d.base.MutableChildren() }
func (d *Decorated) Insets() Inset           { return d.base.Insets() }
func (d *Decorated) Decorable() bool         { return d.decorable }
func (d *Decorated) Placeholder() bool       { return d.base.Placeholder() }
func (d *Decorated) node()                   {}

// Brackets surrounds every content line with Open and Close.
type Brackets struct {
	Open, Close string
}

func (b Brackets) Decorate(content string) string {
	lines := text.Lines(content)
	for i, l := range lines {
		lines[i] = b.Open + l + b.Close
	}
	return strings.Join(lines, "\n")
}

func (b Brackets) WrapChild(child Node, _ int) Node { return Decorate(child, b) }

// Box draws a frame around the content block. Lines shorter than the block
// are padded so the frame stays rectangular.
type Box struct {
	// ASCII selects "+", "-" and "|" instead of box-drawing characters.
	ASCII bool
}

func (b Box) Decorate(content string) string {
	tl, tr, bl, br, h, v := "┌", "┐", "└", "┘", "─", "│"
	if b.ASCII {
		tl, tr, bl, br, h, v = "+", "+", "+", "+", "-", "|"
	}

	lines := text.Lines(content)
	width := 0
	for _, l := range lines {
		width = max(width, text.RuneLen(l))
	}

	var sb strings.Builder
	sb.WriteString(tl + strings.Repeat(h, width) + tr + "\n")
	for _, l := range lines {
		sb.WriteString(v + l + strings.Repeat(" ", width-text.RuneLen(l)) + v + "\n")
	}
	sb.WriteString(bl + strings.Repeat(h, width) + br)
	return sb.String()
}

func (b Box) WrapChild(child Node, _ int) Node { return Decorate(child, b) }
