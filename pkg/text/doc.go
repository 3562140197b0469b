// Package text measures content blocks and buffers rendered rows.
//
// # Content Metrics
//
// A content block is a node's text, possibly spanning several lines.
// [Dimension] reports its bounding box in character cells: the width is the
// rune count of the longest line and the height is the number of lines as
// split by [Lines]. The empty string has no lines and measures (0, 0).
//
// # Line Buffer
//
// [LineBuffer] is a text canvas with bounded lookahead. Rows may be written
// in any order and overlap earlier writes; [LineBuffer.Flush] emits completed
// rows to the underlying writer and forgets them. Once a row is flushed it is
// immutable: later writes to it are silently dropped. A correct layout never
// targets a flushed row, so this is a policy rather than an error.
//
//	buf := text.NewLineBuffer(os.Stdout)
//	_ = buf.Write(0, 0, "AB")
//	_ = buf.Write(0, 1, "X")   // row 0 is now "AX"
//	_ = buf.FlushAll()
//
// Columns are counted in runes, never bytes, so content may be non-ASCII.
package text
