package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/errors"
	treeio "github.com/matzehuels/treeprinter/pkg/io"
	"github.com/matzehuels/treeprinter/pkg/tree"
)

// convertCommand creates the convert command, which rewrites a tree
// document in another format with decoration resolved into content.
func (c *CLI) convertCommand() *cobra.Command {
	var format, to, output string

	cmd := &cobra.Command{
		Use:   "convert [file|-]",
		Short: "Convert a tree document between JSON and TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root, err := loadTree(ctx, cmd, inputArg(args), format)
			if err != nil {
				return err
			}

			write, err := documentWriter(to)
			if err != nil {
				return err
			}

			if output == "" {
				return write(root, cmd.OutOrStdout())
			}
			if err := errors.ValidatePath(output); err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(errors.ErrCodeSinkWrite, err, "create %s", output)
			}
			if err := write(root, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(errors.ErrCodeSinkWrite, err, "close %s", output)
			}
			printSuccess(cmd.ErrOrStderr(), "Converted %s", inputArg(args))
			printFile(cmd.ErrOrStderr(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", formatJSON, "document format when reading stdin: json, toml")
	cmd.Flags().StringVarP(&to, "to", "t", formatTOML, "output format: json, toml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func documentWriter(format string) (func(tree.Node, io.Writer) error, error) {
	switch strings.ToLower(format) {
	case formatJSON:
		return treeio.WriteJSON, nil
	case formatTOML:
		return treeio.WriteTOML, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q (must be json or toml)", format)
}
