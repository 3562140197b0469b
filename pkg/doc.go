// Package pkg provides the libraries behind treeprinter.
//
// # Overview
//
// Treeprinter draws trees as text, parents centered over their children and
// joined by connector lines:
//
//	   root
//	  ┌──┴─┐
//	  │    │
//	left right
//
// The pkg directory is organized by concern:
//
//  1. [tree] - Node variants (plain, placeholder, decorated) and decoration
//  2. [text] - Content metrics and the streaming line buffer
//  3. [render] - The printer, with [render/layout] for placement and
//     [render/liner] for connector glyphs
//  4. [io] and [config] - Tree documents and renderer settings
//
// # Architecture
//
//	JSON/TOML document
//	         ↓
//	    [io] package (build the tree)
//	         ↓
//	    [render/layout] (subtree widths, placement)
//	         ↓
//	    [render] printer (generation by generation, [render/liner] connectors)
//	         ↓
//	    [text] line buffer → io.Writer
//
// # Quick Start
//
//	root := tree.New("root").Add(tree.New("left"), tree.New("right"))
//	err := render.New().Print(ctx, root, os.Stdout)
//
// # Supporting Packages
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for render and document events.
//
// [buildinfo] - Version information stamped in at build time.
//
// [tree]: github.com/matzehuels/treeprinter/pkg/tree
// [text]: github.com/matzehuels/treeprinter/pkg/text
// [render]: github.com/matzehuels/treeprinter/pkg/render
// [render/layout]: github.com/matzehuels/treeprinter/pkg/render/layout
// [render/liner]: github.com/matzehuels/treeprinter/pkg/render/liner
// [io]: github.com/matzehuels/treeprinter/pkg/io
// [config]: github.com/matzehuels/treeprinter/pkg/config
// [errors]: github.com/matzehuels/treeprinter/pkg/errors
// [observability]: github.com/matzehuels/treeprinter/pkg/observability
// [buildinfo]: github.com/matzehuels/treeprinter/pkg/buildinfo
package pkg
