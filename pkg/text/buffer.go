package text

import (
	"io"
	"strings"

	"github.com/matzehuels/treeprinter/pkg/errors"
)

// LineBuffer is a 2D text canvas that accepts writes out of row order and
// streams rows to an [io.Writer] once they are final.
//
// Rows are addressed absolutely. Rows below [LineBuffer.Flushed] have already
// been emitted; the remaining rows are held in memory until flushed.
//
// LineBuffer is not safe for concurrent use.
type LineBuffer struct {
	out     io.Writer
	flushed int
	lines   []string
}

// NewLineBuffer returns an empty buffer writing to w.
func NewLineBuffer(w io.Writer) *LineBuffer {
	return &LineBuffer{out: w}
}

// Flushed returns the number of rows already emitted. It never decreases.
func (b *LineBuffer) Flushed() int { return b.flushed }

// Pending returns the number of rows held in memory.
func (b *LineBuffer) Pending() int { return len(b.lines) }

// Line returns the pending content of an absolute row.
func (b *LineBuffer) Line(row int) (string, bool) {
	i := row - b.flushed
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

// Write places text with its top-left corner at (row, col). Multi-line text
// is written one line per row. Existing content outside the written span is
// kept; shorter rows are padded with spaces up to col. Lines that would land
// on a flushed row are dropped.
//
// Negative coordinates fail with [errors.ErrCodeNumericRange].
func (b *LineBuffer) Write(row, col int, text string) error {
	if row < 0 || col < 0 {
		return errors.New(errors.ErrCodeNumericRange, "negative position (%d, %d)", row, col)
	}
	for i, line := range Lines(text) {
		b.writeLine(row+i, col, line)
	}
	return nil
}

func (b *LineBuffer) writeLine(row, col int, line string) {
	if row < b.flushed {
		return
	}
	i := row - b.flushed
	for len(b.lines) <= i {
		b.lines = append(b.lines, "")
	}
	b.lines[i] = overlay(b.lines[i], col, line)
}

// overlay splices text into line at rune position pos.
func overlay(line string, pos int, text string) string {
	orig := []rune(line)
	n := RuneLen(text)

	var sb strings.Builder
	sb.Grow(len(line) + len(text) + max(0, pos-len(orig)))

	if len(orig) <= pos {
		sb.WriteString(line)
		sb.WriteString(strings.Repeat(" ", pos-len(orig)))
	} else {
		sb.WriteString(string(orig[:pos]))
	}
	sb.WriteString(text)
	if pos+n < len(orig) {
		sb.WriteString(string(orig[pos+n:]))
	}
	return sb.String()
}

// Flush emits every pending row whose absolute index is below through, each
// followed by "\n". A through at or below [LineBuffer.Flushed] is a no-op.
// The low-water mark only advances over rows that were actually pending, so
// a through past the last pending row does not reserve the rows in between:
// a later write to them is still accepted and emitted by the next flush.
//
// A failing writer is reported as [errors.ErrCodeSinkWrite] wrapping the
// writer's error. Rows emitted before the failure stay flushed.
func (b *LineBuffer) Flush(through int) error {
	if through <= b.flushed {
		return nil
	}

	n := min(through-b.flushed, len(b.lines))
	written := 0
	var err error
	for ; written < n; written++ {
		if _, err = io.WriteString(b.out, b.lines[written]+"\n"); err != nil {
			err = errors.Wrap(errors.ErrCodeSinkWrite, err, "write row %d", b.flushed+written)
			break
		}
	}

	b.lines = append(b.lines[:0], b.lines[written:]...)
	b.flushed += written
	return err
}

// FlushAll emits every pending row.
func (b *LineBuffer) FlushAll() error {
	return b.Flush(b.flushed + len(b.lines))
}
