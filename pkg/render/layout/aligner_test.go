package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/treeprinter/pkg/errors"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

func TestAlignNode(t *testing.T) {
	contextCenter := Connection{Align: AlignCenter, Connect: ConnectContext}

	tests := []struct {
		name                          string
		opts                          func(o Options) Options
		position, width, contentWidth int
		want                          Placement
	}{
		{
			name:     "center narrow content",
			position: 0, width: 4, contentWidth: 1,
			want: Placement{Left: 1, TopConnection: 1, BottomConnection: 1},
		},
		{
			name:     "center full width",
			position: 2, width: 2, contentWidth: 2,
			want: Placement{Left: 2, TopConnection: 3, BottomConnection: 3},
		},
		{
			name:     "left",
			opts:     func(o Options) Options { return o.WithAlign(AlignLeft) },
			position: 3, width: 5, contentWidth: 2,
			want: Placement{Left: 3, TopConnection: 3, BottomConnection: 3},
		},
		{
			name:     "right",
			opts:     func(o Options) Options { return o.WithAlign(AlignRight) },
			position: 3, width: 5, contentWidth: 2,
			want: Placement{Left: 6, TopConnection: 7, BottomConnection: 7},
		},
		{
			name: "left content with context-centered anchors",
			opts: func(o Options) Options {
				o.ContentAlign = AlignLeft
				o.TopConnection = contextCenter
				o.BottomConnection = contextCenter
				return o
			},
			position: 0, width: 7, contentWidth: 1,
			want: Placement{Left: 0, TopConnection: 3, BottomConnection: 3},
		},
		{
			name: "context center ignores content width",
			opts: func(o Options) Options {
				o.ContentAlign = AlignRight
				o.TopConnection = contextCenter
				o.BottomConnection = contextCenter
				return o
			},
			position: 2, width: 10, contentWidth: 4,
			want: Placement{Left: 8, TopConnection: 7, BottomConnection: 7},
		},
		{
			name: "context edges",
			opts: func(o Options) Options {
				o.TopConnection = Connection{Align: AlignLeft, Connect: ConnectContext}
				o.BottomConnection = Connection{Align: AlignRight, Connect: ConnectContext}
				return o
			},
			position: 4, width: 6, contentWidth: 2,
			want: Placement{Left: 6, TopConnection: 4, BottomConnection: 9},
		},
		{
			name: "content offset clamped right",
			opts: func(o Options) Options {
				o.ContentOffset = 10
				return o
			},
			position: 0, width: 5, contentWidth: 2,
			want: Placement{Left: 3, TopConnection: 4, BottomConnection: 4},
		},
		{
			name: "content offset clamped at zero",
			opts: func(o Options) Options {
				o.ContentOffset = -5
				return o
			},
			position: 2, width: 4, contentWidth: 2,
			want: Placement{Left: 0, TopConnection: 1, BottomConnection: 1},
		},
		{
			name: "connection offsets clamped to span",
			opts: func(o Options) Options {
				o.TopConnection.Offset = 100
				o.BottomConnection.Offset = -100
				return o
			},
			position: 0, width: 4, contentWidth: 2,
			want: Placement{Left: 1, TopConnection: 3, BottomConnection: 0},
		},
		{
			name:     "empty span",
			position: 5, width: 0, contentWidth: 0,
			want: Placement{Left: 5, TopConnection: 5, BottomConnection: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			if tt.opts != nil {
				opts = tt.opts(opts)
			}
			a, err := New(opts)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			got := a.AlignNode(tt.position, tt.width, tt.contentWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AlignNode(%d, %d, %d) mismatch (-want +got):\n%s",
					tt.position, tt.width, tt.contentWidth, diff)
			}
			if got.Left < 0 || got.Left > tt.position+tt.width-tt.contentWidth {
				t.Errorf("Left = %d escapes span", got.Left)
			}
		})
	}
}

func TestAlignChildren(t *testing.T) {
	x, y := tree.New("x"), tree.New("y")
	parent := tree.New("wide parent!").Add(x, y)
	widths := Widths{parent.ID(): 12, x.ID(): 1, y.ID(): 1}

	tests := []struct {
		align HorizontalAlign
		want  []int
	}{
		{AlignLeft, []int{10, 12}},
		{AlignCenter, []int{14, 16}},
		{AlignRight, []int{19, 21}},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.ChildrenAlign = tt.align
			a, err := New(opts)
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			got, err := a.AlignChildren(parent, parent.Children(), 10, widths)
			if err != nil {
				t.Fatalf("AlignChildren: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("AlignChildren mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlignChildrenFillsParent(t *testing.T) {
	a, bb := tree.New("A"), tree.New("BB")
	root := tree.New("R").Add(a, bb)

	widths, _, err := Default().CollectWidths(root)
	if err != nil {
		t.Fatalf("CollectWidths: %v", err)
	}

	got, err := Default().AlignChildren(root, root.Children(), 0, widths)
	if err != nil {
		t.Fatalf("AlignChildren: %v", err)
	}
	if diff := cmp.Diff([]int{0, 2}, got); diff != "" {
		t.Errorf("AlignChildren mismatch (-want +got):\n%s", diff)
	}
}

func TestAlignChildrenMissingWidth(t *testing.T) {
	child := tree.New("c")
	parent := tree.New("p").Add(child)

	tests := []struct {
		name   string
		widths Widths
	}{
		{"missing child", Widths{parent.ID(): 1}},
		{"missing parent", Widths{child.ID(): 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Default().AlignChildren(parent, parent.Children(), 0, tt.widths)
			if !errors.Is(err, errors.ErrCodeGeometryLookup) {
				t.Errorf("error = %v, want %s", err, errors.ErrCodeGeometryLookup)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	if err := DefaultOptions().Validate(); err != nil {
		t.Errorf("DefaultOptions().Validate() = %v", err)
	}

	bad := DefaultOptions().WithGap(-1)
	if _, err := New(bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("New(gap=-1) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}

	bad = DefaultOptions()
	bad.ContentAlign = HorizontalAlign(9)
	if err := bad.Validate(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Validate(align=9) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input   string
		want    HorizontalAlign
		wantErr bool
	}{
		{"left", AlignLeft, false},
		{"CENTER", AlignCenter, false},
		{"Right", AlignRight, false},
		{"middle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConnectModeText(t *testing.T) {
	var m ConnectMode
	if err := m.UnmarshalText([]byte("Context")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if m != ConnectContext {
		t.Errorf("mode = %v, want %v", m, ConnectContext)
	}
	text, err := m.MarshalText()
	if err != nil || string(text) != "context" {
		t.Errorf("MarshalText() = %q, %v", text, err)
	}
	if err := m.UnmarshalText([]byte("pixels")); err == nil {
		t.Error("UnmarshalText(pixels) should fail")
	}
}
