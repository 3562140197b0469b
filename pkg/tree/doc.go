// Package tree defines the nodes a [render.Printer] lays out.
//
// # Node Variants
//
// [Node] is a capability interface with a closed set of implementations:
//
//   - [Simple]: owns a content block, an [Inset] and an ordered list of children
//   - [PlaceholderNode]: reserves space without a real subtree; its content is
//     always [PlaceholderContent]
//   - [Decorated]: wraps another node and rewrites its content with a [Strategy]
//
// # Identity
//
// Every node gets a unique [ID] when it is constructed. Layout maps are keyed
// by ID, so two siblings with identical text are still distinct nodes.
// IDs are never reused within a process.
//
// # Decoration
//
// [Decorate] wraps a node with a [Strategy]. By default the strategy is also
// applied to each direct child slot (see [WithInherit]); the built-in
// strategies wrap children with themselves, so decoration cascades through
// the whole subtree:
//
//	root := tree.New("root").Add(tree.New("a"), tree.New("b"))
//	boxed := tree.Decorate(root, tree.Box{})
//
// Decoration happens when the tree is built. Printers never mutate nodes.
//
// [render.Printer]: github.com/matzehuels/treeprinter/pkg/render.Printer
package tree
