package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/buildinfo"
	"github.com/matzehuels/treeprinter/pkg/render"
	"github.com/matzehuels/treeprinter/pkg/text"
)

var viewFooterStyle = lipgloss.NewStyle().Foreground(colorDim)

// chromeRows is the number of rows the viewer uses besides the diagram.
const chromeRows = 3

// viewCommand creates the view command, an interactive pager for diagrams
// too large for the terminal.
func (c *CLI) viewCommand() *cobra.Command {
	var opts drawOpts

	cmd := &cobra.Command{
		Use:   "view [file|-]",
		Short: "Render a tree document and page through it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			input := inputArg(args)

			root, err := loadTree(ctx, cmd, input, opts.format)
			if err != nil {
				return err
			}
			printerOpts, err := cfg.PrinterOptions(loggerFromContext(ctx))
			if err != nil {
				return err
			}
			diagram, err := render.New(printerOpts...).Sprint(ctx, root)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newViewModel(input, diagram),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	addDrawFlags(cmd, &opts)
	return cmd
}

// viewModel is the bubbletea model of the pager. It scrolls vertically and
// pans horizontally over a rendered diagram.
type viewModel struct {
	title  string
	lines  []string
	widest int
	top    int // first visible row
	left   int // first visible column
	width  int
	height int // rows available for the diagram
}

func newViewModel(title, diagram string) viewModel {
	m := viewModel{title: title, lines: text.Lines(diagram), width: 80, height: 20}
	for _, l := range m.lines {
		m.widest = max(m.widest, text.RuneLen(l))
	}
	return m
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.top--
		case "down", "j":
			m.top++
		case "pgup", "b":
			m.top -= m.height
		case "pgdown", "f", " ":
			m.top += m.height
		case "home", "g":
			m.top = 0
		case "end", "G":
			m.top = len(m.lines)
		case "left", "h":
			m.left -= 4
		case "right", "l":
			m.left += 4
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(1, msg.Height-chromeRows)
	}
	m.clamp()
	return m, nil
}

func (m *viewModel) clamp() {
	m.top = max(0, min(m.top, len(m.lines)-m.height))
	m.left = max(0, min(m.left, m.widest-m.width))
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(buildinfo.Short()))
	b.WriteString("\n")

	end := min(len(m.lines), m.top+m.height)
	for _, line := range m.lines[m.top:end] {
		b.WriteString(window(line, m.left, m.width))
		b.WriteString("\n")
	}
	for i := end - m.top; i < m.height; i++ {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewFooterStyle.Render(fmt.Sprintf("rows %d-%d of %d  ↑/↓ scroll  ←/→ pan  q quit",
		min(m.top+1, end), end, len(m.lines))))

	return b.String()
}

// window returns the runes of line in columns [left, left+width).
func window(line string, left, width int) string {
	r := []rune(line)
	if left >= len(r) {
		return ""
	}
	return string(r[left:min(len(r), left+width)])
}
