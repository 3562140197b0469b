package liner

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/matzehuels/treeprinter/pkg/errors"
)

// Glyphs is the table of runes used to draw connectors.
//
// The Bracket* fields are only used on the bracket row. "Top" refers to the
// parent's anchor column and "Bottom" to a child's anchor column.
type Glyphs struct {
	Top                      rune // vertical stub under the parent
	BracketLeft              rune // left end of the bracket
	Bracket                  rune // horizontal fill
	BracketTop               rune // parent anchor inside the bracket
	BracketTopLeft           rune // parent anchor at the left end
	BracketTopRight          rune // parent anchor at the right end
	BracketBottom            rune // child anchor inside the bracket
	BracketTopAndBottom      rune // parent and child anchor share a column
	BracketTopAndBottomLeft  rune // shared anchor at the left end
	BracketTopAndBottomRight rune // shared anchor at the right end
	BracketRight             rune // right end of the bracket
	BracketOnly              rune // the bracket is a single column
	Bottom                   rune // vertical stub above a child
}

// ASCII draws connectors with plain ASCII characters.
var ASCII = Glyphs{
	Top:                      '|',
	BracketLeft:              ' ',
	Bracket:                  '_',
	BracketTop:               '|',
	BracketTopLeft:           '|',
	BracketTopRight:          '|',
	BracketBottom:            '_',
	BracketTopAndBottom:      '|',
	BracketTopAndBottomLeft:  '|',
	BracketTopAndBottomRight: '|',
	BracketRight:             ' ',
	BracketOnly:              '|',
	Bottom:                   '|',
}

// Unicode draws connectors with box-drawing characters.
var Unicode = Glyphs{
	Top:                      '│',
	BracketLeft:              '┌',
	Bracket:                  '─',
	BracketTop:               '┴',
	BracketTopLeft:           '└',
	BracketTopRight:          '┘',
	BracketBottom:            '┬',
	BracketTopAndBottom:      '┼',
	BracketTopAndBottomLeft:  '├',
	BracketTopAndBottomRight: '┤',
	BracketRight:             '┐',
	BracketOnly:              '│',
	Bottom:                   '│',
}

// GlyphSet returns the built-in set called name ("ascii" or "unicode").
func GlyphSet(name string) (Glyphs, error) {
	switch strings.ToLower(name) {
	case "ascii":
		return ASCII, nil
	case "unicode", "":
		return Unicode, nil
	}
	return Glyphs{}, errors.New(errors.ErrCodeInvalidConfig, "unknown glyph set %q (must be one of: ascii, unicode)", name)
}

func (g *Glyphs) fields() map[string]*rune {
	return map[string]*rune{
		"top":                          &g.Top,
		"bracket_left":                 &g.BracketLeft,
		"bracket":                      &g.Bracket,
		"bracket_top":                  &g.BracketTop,
		"bracket_top_left":             &g.BracketTopLeft,
		"bracket_top_right":            &g.BracketTopRight,
		"bracket_bottom":               &g.BracketBottom,
		"bracket_top_and_bottom":       &g.BracketTopAndBottom,
		"bracket_top_and_bottom_left":  &g.BracketTopAndBottomLeft,
		"bracket_top_and_bottom_right": &g.BracketTopAndBottomRight,
		"bracket_right":                &g.BracketRight,
		"bracket_only":                 &g.BracketOnly,
		"bottom":                       &g.Bottom,
	}
}

// GlyphNames lists the names accepted by [Glyphs.Set], sorted.
func GlyphNames() []string {
	var g Glyphs
	names := make([]string, 0, 13)
	for name := range g.fields() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set replaces the glyph called name with the single character in value.
func (g *Glyphs) Set(name, value string) error {
	field, ok := g.fields()[name]
	if !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown glyph %q", name)
	}
	if utf8.RuneCountInString(value) != 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "glyph %s must be a single character (got %q)", name, value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError || r < ' ' {
		return errors.New(errors.ErrCodeInvalidConfig, "glyph %s: invalid character %q", name, value)
	}
	*field = r
	return nil
}

// Get returns the glyph called name.
func (g Glyphs) Get(name string) (rune, bool) {
	field, ok := g.fields()[name]
	if !ok {
		return 0, false
	}
	return *field, true
}

func (g Glyphs) String() string {
	return fmt.Sprintf("%c%c%c%c%c%c%c%c%c%c%c%c%c",
		g.Top, g.BracketLeft, g.Bracket, g.BracketTop, g.BracketTopLeft, g.BracketTopRight,
		g.BracketBottom, g.BracketTopAndBottom, g.BracketTopAndBottomLeft, g.BracketTopAndBottomRight,
		g.BracketRight, g.BracketOnly, g.Bottom)
}
