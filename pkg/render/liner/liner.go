package liner

import (
	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/text"
)

// Options configures a [Liner].
type Options struct {
	Glyphs       Glyphs
	TopHeight    int  // rows of stub under the parent
	BottomHeight int  // rows of stub above each child
	Bracket      bool // draw the horizontal bracket row
}

// DefaultOptions uses [Unicode] glyphs, no top stub, a one-row bottom stub
// and a bracket.
func DefaultOptions() Options {
	return Options{
		Glyphs:       Unicode,
		TopHeight:    0,
		BottomHeight: 1,
		Bracket:      true,
	}
}

// Validate rejects negative stub heights.
func (o Options) Validate() error {
	if o.TopHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "top height must not be negative (got %d)", o.TopHeight)
	}
	if o.BottomHeight < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bottom height must not be negative (got %d)", o.BottomHeight)
	}
	return nil
}

// Rows is the number of rows every connector drawn with o occupies.
func (o Options) Rows() int {
	n := o.TopHeight + o.BottomHeight
	if o.Bracket {
		n++
	}
	return n
}

// Liner draws connectors into a [text.LineBuffer]. It is immutable and safe
// for concurrent use on different buffers.
type Liner struct {
	opts Options
}

// New returns a Liner for opts.
func New(opts Options) (*Liner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Liner{opts: opts}, nil
}

// Default returns a Liner using [DefaultOptions].
func Default() *Liner {
	return &Liner{opts: DefaultOptions()}
}

// Options returns the liner's configuration.
func (l *Liner) Options() Options { return l.opts }

// PrintConnections draws the connector from the parent anchor at column top
// to the child anchors in bottoms, starting at row. bottoms must be sorted
// ascending and non-empty. It returns the number of rows drawn.
func (l *Liner) PrintConnections(buf *text.LineBuffer, row, top int, bottoms []int) (int, error) {
	if len(bottoms) == 0 {
		return 0, errors.New(errors.ErrCodeMalformedConnector, "no bottom connections for anchor at column %d", top)
	}
	for i := 1; i < len(bottoms); i++ {
		if bottoms[i] < bottoms[i-1] {
			return 0, errors.New(errors.ErrCodeMalformedConnector, "bottom connections not sorted: %v", bottoms)
		}
	}

	g := l.opts.Glyphs
	for i := 0; i < l.opts.TopHeight; i++ {
		if err := put(buf, row, top, g.Top); err != nil {
			return 0, err
		}
		row++
	}

	if l.opts.Bracket {
		if err := l.bracket(buf, row, top, bottoms); err != nil {
			return 0, err
		}
		row++
	}

	for i := 0; i < l.opts.BottomHeight; i++ {
		for _, x := range bottoms {
			if err := put(buf, row, x, g.Bottom); err != nil {
				return 0, err
			}
		}
		row++
	}

	return l.opts.Rows(), nil
}

func (l *Liner) bracket(buf *text.LineBuffer, row, top int, bottoms []int) error {
	g := l.opts.Glyphs
	start := min(top, bottoms[0])
	end := max(top, bottoms[len(bottoms)-1])

	if start == end {
		return put(buf, row, start, g.BracketOnly)
	}

	next := 0
	for x := start; x <= end; x++ {
		isBottom := false
		for next < len(bottoms) && bottoms[next] <= x {
			isBottom = isBottom || bottoms[next] == x
			next++
		}

		var r rune
		switch {
		case x == top && isBottom:
			switch x {
			case start:
				r = g.BracketTopAndBottomLeft
			case end:
				r = g.BracketTopAndBottomRight
			default:
				r = g.BracketTopAndBottom
			}
		case x == top:
			switch x {
			case start:
				r = g.BracketTopLeft
			case end:
				r = g.BracketTopRight
			default:
				r = g.BracketTop
			}
		case x == start:
			r = g.BracketLeft
		case x == end:
			r = g.BracketRight
		case isBottom:
			r = g.BracketBottom
		default:
			r = g.Bracket
		}
		if err := put(buf, row, x, r); err != nil {
			return err
		}
	}
	return nil
}

func put(buf *text.LineBuffer, row, col int, r rune) error {
	return buf.Write(row, col, string(r))
}
