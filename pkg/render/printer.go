package render

import (
	"context"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/observability"
	"github.com/matzehuels/treeprinter/pkg/render/layout"
	"github.com/matzehuels/treeprinter/pkg/render/liner"
	"github.com/matzehuels/treeprinter/pkg/text"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// Aligner places nodes within the spans reserved for their subtrees.
// [*layout.Aligner] is the standard implementation.
type Aligner interface {
	CollectWidths(root tree.Node) (layout.Widths, int, error)
	AlignNode(position, width, contentWidth int) layout.Placement
	AlignChildren(parent tree.Node, children []tree.Node, position int, widths layout.Widths) ([]int, error)
}

// Liner draws the connector between a parent anchor and its children's
// anchors, returning the number of rows used. [*liner.Liner] is the
// standard implementation.
type Liner interface {
	PrintConnections(buf *text.LineBuffer, row, top int, bottoms []int) (int, error)
}

// Position records where a node was drawn.
type Position struct {
	Row        int // first row of the content block
	Col        int // first column of the node's span
	Left       int // first column of the content block
	Connection int // column connectors to the children start from
	Height     int // rows of content
}

type placed struct {
	node tree.Node
	pos  Position
}

// Option configures a [Printer].
type Option func(*Printer)

// WithAligner replaces the default [layout.Aligner].
func WithAligner(a Aligner) Option {
	return func(p *Printer) {
		if a != nil {
			p.aligner = a
		}
	}
}

// WithLiner replaces the default [liner.Liner].
func WithLiner(l Liner) Option {
	return func(p *Printer) {
		if l != nil {
			p.liner = l
		}
	}
}

// WithPlaceholders controls whether placeholder nodes are drawn. When off,
// a node whose children are all placeholders is drawn as a leaf. Placeholders
// sharing a parent with real children are always drawn.
func WithPlaceholders(show bool) Option {
	return func(p *Printer) { p.placeholders = show }
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *log.Logger) Option {
	return func(p *Printer) {
		if l != nil {
			p.logger = l
		}
	}
}

// Printer renders trees. It is immutable after construction; concurrent
// calls to Print are safe as long as each uses its own writer.
type Printer struct {
	aligner      Aligner
	liner        Liner
	placeholders bool
	logger       *log.Logger
}

// New returns a Printer with the default aligner and liner, placeholders
// hidden.
func New(opts ...Option) *Printer {
	p := &Printer{
		aligner: layout.Default(),
		liner:   liner.Default(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sprint renders root into a string.
func (p *Printer) Sprint(ctx context.Context, root tree.Node) (string, error) {
	var sb strings.Builder
	if err := p.Print(ctx, root, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Print renders root to w, one "\n"-terminated line per row. Rows are
// written as soon as they are final. On error, rows already written stay
// in w.
//
// The context is checked between generations; cancellation aborts with
// ctx.Err().
func (p *Printer) Print(ctx context.Context, root tree.Node, w io.Writer) (err error) {
	id := uuid.NewString()
	start := time.Now()
	buf := text.NewLineBuffer(w)
	logger := p.logger.With("render", id)

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, id, tree.Count(root))
	defer func() {
		hooks.OnRenderComplete(ctx, id, buf.Flushed(), time.Since(start), err)
		if err != nil {
			logger.Debug("render failed", "rows", buf.Flushed(), "error", err)
		} else {
			logger.Debug("render complete", "rows", buf.Flushed(), "duration", time.Since(start))
		}
	}()

	widths, rootWidth, err := p.aligner.CollectWidths(root)
	if err != nil {
		return err
	}

	rootPos, err := p.place(buf, root, 0, 0, rootWidth)
	if err != nil {
		return err
	}
	if err := buf.Flush(rootPos.Row + rootPos.Height); err != nil {
		return err
	}
	logger.Debug("root placed", "width", rootWidth, "height", rootPos.Height)

	gen := []placed{{node: root, pos: rootPos}}
	for layer := 1; len(gen) > 0; layer++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, horizon, err := p.generation(buf, gen, widths)
		if err != nil {
			return err
		}
		if len(next) > 0 {
			if err := buf.Flush(horizon); err != nil {
				return err
			}
		}

		hooks.OnLayerComplete(ctx, id, layer, len(next), buf.Flushed())
		logger.Debug("layer complete", "layer", layer, "nodes", len(next), "flushed", buf.Flushed(), "pending", buf.Pending())
		gen = next
	}

	return buf.FlushAll()
}

// generation draws the connectors and children of every node in gen. It
// returns the placed children and the smallest bottom edge among them.
func (p *Printer) generation(buf *text.LineBuffer, gen []placed, widths layout.Widths) ([]placed, int, error) {
	var next []placed
	horizon := text.MaxCoordinate

	for _, parent := range gen {
		children := parent.node.Children()
		if p.isLeaf(children) {
			continue
		}

		cols, err := p.aligner.AlignChildren(parent.node, children, parent.pos.Col, widths)
		if err != nil {
			return nil, 0, err
		}

		type pending struct {
			node      tree.Node
			col       int
			height    int
			placement layout.Placement
		}
		drawn := make([]pending, 0, len(children))
		tops := make([]int, 0, len(children))
		for i, child := range children {
			w, err := widths.Of(child)
			if err != nil {
				return nil, 0, err
			}
			cw, ch, err := text.Dimension(child.Content())
			if err != nil {
				return nil, 0, err
			}
			pl := p.aligner.AlignNode(cols[i], w, cw)
			drawn = append(drawn, pending{node: child, col: cols[i], height: ch, placement: pl})
			tops = append(tops, pl.TopConnection)
		}
		slices.Sort(tops)

		connRow := parent.pos.Row + parent.pos.Height
		rows, err := p.liner.PrintConnections(buf, connRow, parent.pos.Connection, tops)
		if err != nil {
			return nil, 0, err
		}

		row := connRow + rows
		for _, d := range drawn {
			if row > text.MaxCoordinate-d.height {
				return nil, 0, errors.New(errors.ErrCodeNumericRange, "row %d exceeds the coordinate range", row)
			}
			if err := buf.Write(row, d.placement.Left, d.node.Content()); err != nil {
				return nil, 0, err
			}
			pos := Position{
				Row:        row,
				Col:        d.col,
				Left:       d.placement.Left,
				Connection: d.placement.BottomConnection,
				Height:     d.height,
			}
			horizon = min(horizon, row+d.height)
			next = append(next, placed{node: d.node, pos: pos})
		}
	}
	return next, horizon, nil
}

// place aligns and writes a single node whose span starts at col.
func (p *Printer) place(buf *text.LineBuffer, n tree.Node, row, col, width int) (Position, error) {
	cw, ch, err := text.Dimension(n.Content())
	if err != nil {
		return Position{}, err
	}
	pl := p.aligner.AlignNode(col, width, cw)
	if err := buf.Write(row, pl.Left, n.Content()); err != nil {
		return Position{}, err
	}
	return Position{Row: row, Col: col, Left: pl.Left, Connection: pl.BottomConnection, Height: ch}, nil
}

// isLeaf reports whether a node with these children gets no connector.
func (p *Printer) isLeaf(children []tree.Node) bool {
	if len(children) == 0 {
		return true
	}
	if p.placeholders {
		return false
	}
	for _, c := range children {
		if !c.Placeholder() {
			return false
		}
	}
	return true
}
