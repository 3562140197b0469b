// Package liner draws the connector artwork between a parent and its
// children.
//
// A connector is made of up to three parts, top to bottom:
//
//   - a vertical stub under the parent's bottom anchor (TopHeight rows)
//   - one horizontal bracket row spanning the parent and child anchors
//   - a vertical stub above every child's top anchor (BottomHeight rows)
//
// With the ASCII glyph set and no stubs, a parent anchored at column 1 with
// children at columns 0 and 3 produces the bracket row " |_ ". The same
// connector with [Unicode] glyphs reads "┌┴─┐".
//
// Glyph sets are plain structs, so individual glyphs can be replaced:
//
//	g := liner.ASCII
//	g.Bracket = '-'
//	l, err := liner.New(liner.Options{Glyphs: g, BottomHeight: 1, Bracket: true})
package liner
