package text

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/treeprinter/pkg/errors"
)

// MaxCoordinate is the largest row or column a layout may produce.
const MaxCoordinate = math.MaxInt32

// Lines splits s into lines. A trailing "\r" is removed from each line and a
// final "\n" does not start an extra empty line, so "" yields no lines and
// "a\n" yields ["a"].
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// RuneLen returns the number of character cells s occupies on one row.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Dimension returns the bounding box of a content block.
// It fails with [errors.ErrCodeNumericRange] if either side exceeds
// [MaxCoordinate].
func Dimension(content string) (width, height int, err error) {
	lines := Lines(content)
	for _, l := range lines {
		width = max(width, RuneLen(l))
	}
	height = len(lines)

	if width > MaxCoordinate || height > MaxCoordinate {
		return 0, 0, errors.New(errors.ErrCodeNumericRange,
			"content block %dx%d exceeds coordinate range", width, height)
	}
	return width, height, nil
}
