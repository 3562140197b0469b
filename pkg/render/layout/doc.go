// Package layout computes horizontal geometry for traditional tree diagrams.
//
// Layout runs in two passes. [CollectWidths] walks the tree bottom-up and
// records, for every node, the number of columns its subtree needs:
//
//	width(n) = max(contentWidth(n), sum(width(children)) + gap*(len(children)-1))
//
// The printer then walks the tree top-down one generation at a time and asks
// an [Aligner] where each node's content and connector anchors go within the
// span reserved for it ([Aligner.AlignNode]) and where each child's span
// starts ([Aligner.AlignChildren]).
//
// Content placement and anchor placement are configured independently, so a
// node can be drawn left-aligned while its connector still lands at the
// center of its span. See [Options] for every setting.
//
// All coordinates are integer character cells. Results are clamped so content
// never leaves its reserved span.
package layout
