package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/config"
	"github.com/matzehuels/treeprinter/pkg/render/liner"
)

// configCommand creates the config command, which prints the effective
// configuration as TOML.
func (c *CLI) configCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: `Print the effective configuration as TOML.

Without --config the built-in defaults are printed, which makes a good
starting point for a config file:

  treeprinter config > treeprinter.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if path != "" {
				var err error
				if cfg, err = config.Load(path); err != nil {
					return err
				}
			}
			return cfg.Encode(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "TOML config file to check and print")

	cmd.AddCommand(&cobra.Command{
		Use:   "glyphs",
		Short: "List the connector glyph names usable in [liner.overrides]",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			for _, name := range liner.GlyphNames() {
				u, _ := liner.Unicode.Get(name)
				a, _ := liner.ASCII.Get(name)
				printKeyValue(w, name, fmt.Sprintf("%q %q", u, a))
			}
		},
	})

	return cmd
}
