package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/treeprinter/pkg/errors"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorGreen = lipgloss.Color("35")  // Green - success
	colorRed   = lipgloss.Color("167") // Soft red - errors
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// Status lines go to a separate writer from the diagram so piping the
// diagram never picks them up.

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

// PrintError prints err with its error code, if any, set off at the end.
func PrintError(w io.Writer, err error) {
	msg := err.Error()
	if code := errors.GetCode(err); code != "" {
		msg = strings.TrimPrefix(msg, string(code)+": ") + " " + StyleDim.Render("["+string(code)+"]")
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value. Keys are padded to 12 columns but
// never wrapped.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(fmt.Sprintf("%-12s", key))+" "+StyleValue.Render(value))
}

// printStats prints tree statistics on a single line.
func printStats(w io.Writer, nodes, rows int) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf("%d nodes", nodes))+
		StyleDim.Render(" · ")+
		StyleDim.Render(fmt.Sprintf("%d rows", rows)))
}
