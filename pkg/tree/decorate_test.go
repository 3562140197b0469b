package tree

import (
	"fmt"
	"testing"
)

// recorder counts WrapChild calls and tags decorated content.
type recorder struct {
	tag     string
	wrapped *[]int
}

func (r recorder) Decorate(content string) string { return r.tag + content }

func (r recorder) WrapChild(child Node, index int) Node {
	*r.wrapped = append(*r.wrapped, index)
	return Decorate(child, r, WithInherit(false))
}

func TestDecorateContent(t *testing.T) {
	var wrapped []int
	d := Decorate(New("x"), recorder{tag: "*", wrapped: &wrapped})

	if d.Content() != "*x" {
		t.Errorf("Content() = %q, want %q", d.Content(), "*x")
	}
	if !d.Decorable() {
		t.Error("Decorable() should default to the base value")
	}
}

func TestDecoratePassesThroughNonDecorable(t *testing.T) {
	var wrapped []int
	d := Decorate(NewPlaceholder(), recorder{tag: "*", wrapped: &wrapped})

	if d.Content() != PlaceholderContent {
		t.Errorf("Content() = %q, want %q", d.Content(), PlaceholderContent)
	}
	if !d.Placeholder() {
		t.Error("Placeholder() should forward to the base")
	}
	if d.Decorable() {
		t.Error("Decorable() should follow the non-decorable base")
	}
}

func TestDecorateInherit(t *testing.T) {
	base := New("root").Add(New("a"), New("b"), New("c"))
	var wrapped []int
	d := Decorate(base, recorder{tag: "*", wrapped: &wrapped})

	if fmt.Sprint(wrapped) != "[0 1 2]" {
		t.Errorf("WrapChild indexes = %v, want [0 1 2]", wrapped)
	}
	for i, c := range d.Children() {
		if _, ok := c.(*Decorated); !ok {
			t.Errorf("child %d is %T, want *Decorated", i, c)
		}
	}
	if got := d.Children()[1].Content(); got != "*b" {
		t.Errorf("child content = %q, want %q", got, "*b")
	}
}

func TestDecorateWithoutInherit(t *testing.T) {
	a := New("a")
	base := New("root").Add(a)
	var wrapped []int
	d := Decorate(base, recorder{tag: "*", wrapped: &wrapped}, WithInherit(false))

	if len(wrapped) != 0 {
		t.Errorf("WrapChild called %d times, want 0", len(wrapped))
	}
	if d.Children()[0] != a {
		t.Error("child slot replaced without inheritance")
	}
}

func TestDecorateWithDecorable(t *testing.T) {
	var wrapped []int
	inner := Decorate(New("x"), recorder{tag: "1", wrapped: &wrapped}, WithDecorable(false))
	outer := Decorate(inner, recorder{tag: "2", wrapped: &wrapped})

	if outer.Content() != "1x" {
		t.Errorf("Content() = %q, want %q", outer.Content(), "1x")
	}

	stacked := Decorate(Decorate(New("x"), recorder{tag: "1", wrapped: &wrapped}), recorder{tag: "2", wrapped: &wrapped})
	if stacked.Content() != "21x" {
		t.Errorf("Content() = %q, want %q", stacked.Content(), "21x")
	}
}

func TestDecoratedIdentity(t *testing.T) {
	base := New("x")
	d := Decorate(base, Brackets{Open: "[", Close: "]"})
	if d.ID() == base.ID() {
		t.Error("decorated node shares its base's ID")
	}
	if d.Base() != base {
		t.Error("Base() should return the wrapped node")
	}
}

func TestBrackets(t *testing.T) {
	got := Brackets{Open: "<", Close: ">"}.Decorate("a\nbc")
	if want := "<a>\n<bc>"; got != want {
		t.Errorf("Decorate = %q, want %q", got, want)
	}
}

func TestBox(t *testing.T) {
	tests := []struct {
		name    string
		box     Box
		content string
		want    string
	}{
		{
			name:    "unicode",
			content: "ab\nc",
			want:    "┌──┐\n│ab│\n│c │\n└──┘",
		},
		{
			name:    "ascii",
			box:     Box{ASCII: true},
			content: "x",
			want:    "+-+\n|x|\n+-+",
		},
		{
			name:    "empty",
			content: "",
			want:    "┌┐\n└┘",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Decorate(tt.content); got != tt.want {
				t.Errorf("Decorate(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestBoxCascades(t *testing.T) {
	root := New("r").Add(New("a").Add(New("leaf")))
	d := Decorate(root, Box{ASCII: true})

	leaf := d.Children()[0].Children()[0]
	if want := "+----+\n|leaf|\n+----+"; leaf.Content() != want {
		t.Errorf("grandchild content = %q, want %q", leaf.Content(), want)
	}
}
