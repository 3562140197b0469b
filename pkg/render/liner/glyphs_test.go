package liner

import (
	"sort"
	"testing"
)

func TestGlyphSet(t *testing.T) {
	tests := []struct {
		name    string
		want    Glyphs
		wantErr bool
	}{
		{"ascii", ASCII, false},
		{"Unicode", Unicode, false},
		{"", Unicode, false},
		{"emoji", Glyphs{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GlyphSet(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GlyphSet(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GlyphSet(%q) = %s, want %s", tt.name, got, tt.want)
			}
		})
	}
}

func TestGlyphNames(t *testing.T) {
	names := GlyphNames()
	if len(names) != 13 {
		t.Fatalf("len(GlyphNames()) = %d, want 13", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("GlyphNames() not sorted: %v", names)
	}
	for _, name := range names {
		if _, ok := Unicode.Get(name); !ok {
			t.Errorf("Get(%q) not found", name)
		}
	}
}

func TestGlyphsSet(t *testing.T) {
	g := ASCII
	if err := g.Set("bracket", "-"); err != nil {
		t.Fatalf("Set(bracket): %v", err)
	}
	if g.Bracket != '-' {
		t.Errorf("Bracket = %q, want '-'", g.Bracket)
	}
	if ASCII.Bracket != '_' {
		t.Error("Set modified the shared ASCII set")
	}

	if err := g.Set("bracket_top_and_bottom_left", "╞"); err != nil {
		t.Fatalf("Set(bracket_top_and_bottom_left): %v", err)
	}
	if r, _ := g.Get("bracket_top_and_bottom_left"); r != '╞' {
		t.Errorf("Get = %q, want '╞'", r)
	}

	bad := []struct{ name, value string }{
		{"nope", "x"},
		{"top", "ab"},
		{"top", ""},
		{"top", "\t"},
	}
	for _, tt := range bad {
		if err := g.Set(tt.name, tt.value); err == nil {
			t.Errorf("Set(%q, %q) should fail", tt.name, tt.value)
		}
	}
}
