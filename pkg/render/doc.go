// Package render streams tree diagrams as text.
//
// # Overview
//
// A [Printer] draws a [tree.Node] top-down: every node's content block sits
// centered (or left/right aligned) over the span its subtree needs, and a
// connector joins each parent to its children.
//
//	 R
//	┌┴─┐
//	│  │
//	A BB
//
// Rendering runs in two passes. The first computes the width every subtree
// needs ([layout.CollectWidths]). The second walks the tree one generation at
// a time, placing children inside their parent's span, drawing connectors
// and writing content into a [text.LineBuffer]. After each generation the
// buffer is flushed up to the shallowest bottom edge among the newly placed
// children: nothing above that row can change any more, so memory stays
// bounded by roughly one generation of rows.
//
// # Configuration
//
// Placement is delegated to an [Aligner] and connector drawing to a [Liner].
// The defaults come from the [layout] and [liner] subpackages:
//
//	a, _ := layout.New(layout.DefaultOptions().WithGap(2))
//	l, _ := liner.New(liner.Options{Glyphs: liner.ASCII, Bracket: true})
//	p := render.New(render.WithAligner(a), render.WithLiner(l))
//	err := p.Print(ctx, root, os.Stdout)
//
// [layout]: github.com/matzehuels/treeprinter/pkg/render/layout
// [liner]: github.com/matzehuels/treeprinter/pkg/render/liner
package render
