package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/config"
	"github.com/matzehuels/treeprinter/pkg/errors"
	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/render"
	"github.com/matzehuels/treeprinter/pkg/render/layout"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

const (
	formatJSON = "json"
	formatTOML = "toml"
)

// drawOpts holds the flags shared by every command that draws a tree.
// Flags left unset keep the value from the config file.
type drawOpts struct {
	configPath   string // TOML config file
	format       string // document format when reading stdin
	align        string
	gap          int
	glyphs       string
	topHeight    int
	bottomHeight int
	noBracket    bool
	placeholders bool
}

func addDrawFlags(cmd *cobra.Command, opts *drawOpts) {
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&opts.format, "format", formatJSON, "document format when reading stdin: json, toml")
	f.StringVar(&opts.align, "align", "", "alignment for content, connectors and children: left, center, right")
	f.IntVar(&opts.gap, "gap", layout.DefaultGap, "columns between sibling subtrees")
	f.StringVar(&opts.glyphs, "glyphs", "", "connector glyphs: unicode, ascii")
	f.IntVar(&opts.topHeight, "top-height", 0, "rows of connector under each parent")
	f.IntVar(&opts.bottomHeight, "bottom-height", 1, "rows of connector above each child")
	f.BoolVar(&opts.noBracket, "no-bracket", false, "omit the horizontal bracket row")
	f.BoolVar(&opts.placeholders, "placeholders", false, "draw placeholder nodes")
}

// loadConfig reads the config file, if any, and applies the flags the user
// set explicitly.
func loadConfig(cmd *cobra.Command, opts *drawOpts) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("align") {
		h, err := layout.ParseAlign(opts.align)
		if err != nil {
			return nil, err
		}
		cfg.Aligner.SetAlign(h)
	}
	if changed("gap") {
		cfg.Aligner.Gap = opts.gap
	}
	if changed("glyphs") {
		cfg.Liner.Glyphs = opts.glyphs
	}
	if changed("top-height") {
		cfg.Liner.TopHeight = opts.topHeight
	}
	if changed("bottom-height") {
		cfg.Liner.BottomHeight = opts.bottomHeight
	}
	if changed("no-bracket") {
		cfg.Liner.Bracket = !opts.noBracket
	}
	if changed("placeholders") {
		cfg.Printer.Placeholders = opts.placeholders
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTree reads a tree document from a file or, for "-", from stdin.
func loadTree(ctx context.Context, cmd *cobra.Command, input, format string) (tree.Node, error) {
	if input != stdinArg {
		return treeio.Import(ctx, input)
	}
	switch strings.ToLower(format) {
	case formatJSON:
		return treeio.ReadJSON(cmd.InOrStdin())
	case formatTOML:
		return treeio.ReadTOML(cmd.InOrStdin())
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q (must be json or toml)", format)
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}
	return args[0]
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts   drawOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a tree document as a text diagram",
		Long: `Render a tree document (JSON or TOML) as a text diagram.

Rows are streamed as soon as they are final. With no file, or "-", the
document is read from stdin in the format given by --format.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, &opts)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, inputArg(args), output, cfg, &opts)
		},
	}

	addDrawFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the diagram to a file instead of stdout")

	return cmd
}

func runRender(ctx context.Context, cmd *cobra.Command, input, output string, cfg *config.Config, opts *drawOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := loadTree(ctx, cmd, input, opts.format)
	if err != nil {
		return err
	}

	printerOpts, err := cfg.PrinterOptions(logger)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		if err := errors.ValidatePath(output); err != nil {
			return err
		}
		f, err := os.Create(output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeSinkWrite, err, "create %s", output)
		}
		defer f.Close()
		w = f
	}

	rc := &rowCounter{w: w}
	if err := render.New(printerOpts...).Print(ctx, root, rc); err != nil {
		return err
	}

	nodes := tree.Count(root)
	if output == "" {
		prog.done(fmt.Sprintf("Rendered %d nodes", nodes))
		return nil
	}
	if f, ok := w.(*os.File); ok {
		if err := f.Close(); err != nil {
			return errors.Wrap(errors.ErrCodeSinkWrite, err, "close %s", output)
		}
	}

	status := cmd.ErrOrStderr()
	printSuccess(status, "Rendered %s", input)
	printFile(status, output)
	printStats(status, nodes, rc.rows)
	return nil
}

// rowCounter counts the lines passing through to w.
type rowCounter struct {
	w    io.Writer
	rows int
}

func (r *rowCounter) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	r.rows += strings.Count(string(p[:n]), "\n")
	return n, err
}
