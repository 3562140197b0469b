package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/treeprinter/pkg/errors"
)

// HorizontalAlign positions something within a horizontal span.
type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

var alignNames = map[HorizontalAlign]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

func (a HorizontalAlign) String() string {
	if s, ok := alignNames[a]; ok {
		return s
	}
	return fmt.Sprintf("HorizontalAlign(%d)", int(a))
}

// ParseAlign parses "left", "center" or "right" (case-insensitive).
func ParseAlign(s string) (HorizontalAlign, error) {
	for a, name := range alignNames {
		if strings.EqualFold(s, name) {
			return a, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid alignment %q (must be one of: left, center, right)", s)
}

func (a HorizontalAlign) MarshalText() ([]byte, error) {
	if _, ok := alignNames[a]; !ok {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid alignment %d", int(a))
	}
	return []byte(a.String()), nil
}

func (a *HorizontalAlign) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ConnectMode selects what a connector anchor is aligned against.
type ConnectMode int

const (
	// ConnectContent anchors relative to the content block.
	ConnectContent ConnectMode = iota
	// ConnectContext anchors relative to the reserved span, ignoring the
	// content's width and placement.
	ConnectContext
)

func (m ConnectMode) String() string {
	switch m {
	case ConnectContent:
		return "content"
	case ConnectContext:
		return "context"
	}
	return fmt.Sprintf("ConnectMode(%d)", int(m))
}

// ParseConnectMode parses "content" or "context" (case-insensitive).
func ParseConnectMode(s string) (ConnectMode, error) {
	switch strings.ToLower(s) {
	case "content":
		return ConnectContent, nil
	case "context":
		return ConnectContext, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfig, "invalid connect mode %q (must be one of: content, context)", s)
}

func (m ConnectMode) MarshalText() ([]byte, error) {
	if m != ConnectContent && m != ConnectContext {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid connect mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *ConnectMode) UnmarshalText(text []byte) error {
	v, err := ParseConnectMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Connection describes where a connector touches a node.
type Connection struct {
	Align   HorizontalAlign
	Connect ConnectMode
	Offset  int
}

// Options configures an [Aligner].
type Options struct {
	ContentAlign     HorizontalAlign // placement of the content block in its span
	ContentOffset    int             // added to the content's left edge before clamping
	TopConnection    Connection      // where the connector from the parent lands
	BottomConnection Connection      // where connectors to the children start
	ChildrenAlign    HorizontalAlign // placement of narrow children under a wider parent
	Gap              int             // columns between sibling subtrees
}

// DefaultGap is the default number of columns between siblings.
const DefaultGap = 1

// DefaultOptions centers everything with a gap of [DefaultGap].
func DefaultOptions() Options {
	return Options{}.WithAlign(AlignCenter).WithGap(DefaultGap)
}

// WithAlign returns a copy of o with the content, both connections and the
// children set to a.
func (o Options) WithAlign(a HorizontalAlign) Options {
	o.ContentAlign = a
	o.TopConnection.Align = a
	o.BottomConnection.Align = a
	o.ChildrenAlign = a
	return o
}

// WithGap returns a copy of o with the given gap.
func (o Options) WithGap(gap int) Options {
	o.Gap = gap
	return o
}

// Validate reports settings no layout can honor.
func (o Options) Validate() error {
	if o.Gap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "gap must not be negative (got %d)", o.Gap)
	}
	for name, a := range map[string]HorizontalAlign{
		"content_align":           o.ContentAlign,
		"children_align":          o.ChildrenAlign,
		"top_connection.align":    o.TopConnection.Align,
		"bottom_connection.align": o.BottomConnection.Align,
	} {
		if _, ok := alignNames[a]; !ok {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: invalid alignment %d", name, int(a))
		}
	}
	for name, m := range map[string]ConnectMode{
		"top_connection.connect":    o.TopConnection.Connect,
		"bottom_connection.connect": o.BottomConnection.Connect,
	} {
		if m != ConnectContent && m != ConnectContext {
			return errors.New(errors.ErrCodeInvalidConfig, "%s: invalid connect mode %d", name, int(m))
		}
	}
	return nil
}
