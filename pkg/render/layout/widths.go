package layout

import (
	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/text"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// Widths maps each node to the number of columns its subtree needs.
// It is built once per render and not modified afterwards.
type Widths map[tree.ID]int

// Of returns the subtree width of n, failing with
// [errors.ErrCodeGeometryLookup] if n was not measured.
func (w Widths) Of(n tree.Node) (int, error) {
	width, ok := w[n.ID()]
	if !ok {
		return 0, errors.New(errors.ErrCodeGeometryLookup, "no width for node %d (%q)", n.ID(), n.Content())
	}
	return width, nil
}

// CollectWidths measures every subtree of root in post-order, leaving gap
// columns between siblings. It returns the width map and the width of root
// itself, which is the span the printer reserves for the whole diagram.
func CollectWidths(root tree.Node, gap int) (Widths, int, error) {
	widths := make(Widths)
	w, err := collect(root, gap, widths)
	if err != nil {
		return nil, 0, err
	}
	return widths, w, nil
}

func collect(n tree.Node, gap int, widths Widths) (int, error) {
	childrenWidth := 0
	for i, child := range n.Children() {
		if i > 0 {
			childrenWidth += gap
		}
		w, err := collect(child, gap, widths)
		if err != nil {
			return 0, err
		}
		childrenWidth += w
	}

	contentWidth, _, err := text.Dimension(n.Content())
	if err != nil {
		return 0, err
	}

	width := max(contentWidth, childrenWidth)
	if width > text.MaxCoordinate {
		return 0, errors.New(errors.ErrCodeNumericRange, "subtree of node %d is %d columns wide", n.ID(), width)
	}
	widths[n.ID()] = width
	return width, nil
}
