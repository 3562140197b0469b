package layout

import (
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// Placement is where a node goes within its reserved span.
type Placement struct {
	Left             int // column of the content block's left edge
	TopConnection    int // column where the parent's connector lands
	BottomConnection int // column where connectors to the children start
}

// Aligner places nodes and children within reserved spans according to its
// [Options]. It is immutable and safe for concurrent use.
type Aligner struct {
	opts Options
}

// New returns an Aligner for opts.
func New(opts Options) (*Aligner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Aligner{opts: opts}, nil
}

// Default returns an Aligner using [DefaultOptions].
func Default() *Aligner {
	return &Aligner{opts: DefaultOptions()}
}

// Options returns the aligner's configuration.
func (a *Aligner) Options() Options { return a.opts }

// CollectWidths runs [CollectWidths] with the aligner's gap.
func (a *Aligner) CollectWidths(root tree.Node) (Widths, int, error) {
	return CollectWidths(root, a.opts.Gap)
}

// AlignNode places a content block of contentWidth columns in the span
// [position, position+width). The content's left edge is clamped to
// [0, position+width-contentWidth] and both anchors to [0, position+width-1].
// An empty span anchors at position.
func (a *Aligner) AlignNode(position, width, contentWidth int) Placement {
	contentMaxLeft := position + width - contentWidth
	connectionMax := max(position, position+width-1)

	var left int
	switch a.opts.ContentAlign {
	case AlignLeft:
		left = position
	case AlignRight:
		left = contentMaxLeft
	default:
		left = position + (width-contentWidth)/2
	}
	left = clamp(left+a.opts.ContentOffset, 0, contentMaxLeft)

	s := span{position: position, width: width, left: left, contentWidth: contentWidth, max: connectionMax}
	return Placement{
		Left:             left,
		TopConnection:    s.anchor(a.opts.TopConnection),
		BottomConnection: s.anchor(a.opts.BottomConnection),
	}
}

type span struct {
	position, width    int
	left, contentWidth int
	max                int
}

func (s span) anchor(c Connection) int {
	var x int
	if c.Connect == ConnectContext {
		switch c.Align {
		case AlignLeft:
			x = s.position
		case AlignRight:
			x = s.max
		default:
			x = s.position + s.width/2
		}
	} else {
		switch c.Align {
		case AlignLeft:
			x = s.left
		case AlignRight:
			x = s.left + s.contentWidth - 1
		default:
			x = s.left + s.contentWidth/2
		}
	}
	return clamp(x+c.Offset, 0, s.max)
}

// AlignChildren returns the first column of each child's span. Children are
// laid out left to right from position with the configured gap between them.
// When their combined width is narrower than the parent's, all of them are
// shifted according to ChildrenAlign.
//
// It fails with [errors.ErrCodeGeometryLookup] if the parent or a child is
// missing from widths.
func (a *Aligner) AlignChildren(parent tree.Node, children []tree.Node, position int, widths Widths) ([]int, error) {
	cols := make([]int, 0, len(children))
	total := 0
	for i, child := range children {
		if i > 0 {
			total += a.opts.Gap
		}
		w, err := widths.Of(child)
		if err != nil {
			return nil, err
		}
		cols = append(cols, position+total)
		total += w
	}

	parentWidth, err := widths.Of(parent)
	if err != nil {
		return nil, err
	}

	var offset int
	switch a.opts.ChildrenAlign {
	case AlignRight:
		offset = parentWidth - total
	case AlignCenter:
		offset = (parentWidth - total) / 2
	}
	if offset > 0 {
		for i := range cols {
			cols[i] += offset
		}
	}
	return cols, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
