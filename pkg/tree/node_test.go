package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIdentityIsNotContent(t *testing.T) {
	a := New("same")
	b := New("same")

	if a.ID() == b.ID() {
		t.Fatalf("nodes with equal content share ID %d", a.ID())
	}

	seen := map[ID]string{a.ID(): "a", b.ID(): "b"}
	if len(seen) != 2 {
		t.Errorf("identity map has %d entries, want 2", len(seen))
	}
}

func TestSimpleAdd(t *testing.T) {
	a, b := New("a"), New("b")
	root := New("root").Add(a, nil, b)

	if got := len(root.Children()); got != 2 {
		t.Fatalf("len(Children()) = %d, want 2", got)
	}
	if root.Children()[0] != a || root.Children()[1] != b {
		t.Error("children not kept in insertion order")
	}
	if !root.Decorable() || root.Placeholder() {
		t.Error("simple node should be decorable and not a placeholder")
	}
}

func TestNewWithInset(t *testing.T) {
	in := Inset{Top: 1, Right: 2, Bottom: 3, Left: 4}
	n := NewWithInset("x", in)
	if n.Insets() != in {
		t.Errorf("Insets() = %+v, want %+v", n.Insets(), in)
	}
	if New("y").Insets() != EmptyInset {
		t.Error("New should use EmptyInset")
	}
}

func TestPlaceholder(t *testing.T) {
	p := NewPlaceholder()

	if p.Content() != PlaceholderContent {
		t.Errorf("Content() = %q, want %q", p.Content(), PlaceholderContent)
	}
	if !p.Placeholder() {
		t.Error("Placeholder() = false, want true")
	}
	if p.Decorable() {
		t.Error("Decorable() = true, want false")
	}
	if len(p.Children()) != 0 {
		t.Errorf("placeholder has %d children", len(p.Children()))
	}
	if NewPlaceholder().ID() == p.ID() {
		t.Error("placeholders share an ID")
	}
}

func TestWalk(t *testing.T) {
	root := New("r").Add(
		New("a").Add(New("a1"), New("a2")),
		New("b"),
	)

	var got []string
	var depths []int
	Walk(root, func(n Node, depth int) bool {
		got = append(got, n.Content())
		depths = append(depths, depth)
		return true
	})

	if diff := cmp.Diff([]string{"r", "a", "a1", "a2", "b"}, got); diff != "" {
		t.Errorf("pre-order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 2, 1}, depths); diff != "" {
		t.Errorf("depth mismatch (-want +got):\n%s", diff)
	}

	var pruned []string
	Walk(root, func(n Node, _ int) bool {
		pruned = append(pruned, n.Content())
		return n.Content() != "a"
	})
	if diff := cmp.Diff([]string{"r", "a", "b"}, pruned); diff != "" {
		t.Errorf("pruned walk mismatch (-want +got):\n%s", diff)
	}

	if Count(root) != 5 {
		t.Errorf("Count() = %d, want 5", Count(root))
	}
}
