// Package cli implements the treeprinter command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeprinter/pkg/buildinfo"
	"github.com/matzehuels/treeprinter/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "treeprinter"

	// stdinArg names standard input in place of a file argument.
	stdinArg = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetVerbose switches to debug logging and reports render and document
// events through the logger.
func (c *CLI) SetVerbose(verbose bool) {
	if !verbose {
		c.SetLogLevel(LogInfo)
		return
	}
	c.SetLogLevel(LogDebug)
	hooks := &logHooks{logger: c.Logger}
	observability.SetRenderHooks(hooks)
	observability.SetDocumentHooks(hooks)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Treeprinter draws trees as text diagrams",
		Long:         `Treeprinter renders tree documents (JSON or TOML) as ASCII or Unicode diagrams, streaming rows to the terminal as soon as they are final.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
