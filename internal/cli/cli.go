// Package cli implements the tachypack command-line interface.
//
// This package provides commands for resolving font names to the paths of
// their bundled TachyFont archives, listing the archives present under the
// configured base directory, and inspecting individual archives. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - resolve: Map font names to archive paths
//   - list: List archives under the base directory
//   - inspect: Show the contents of a font's archive
//   - config: Manage the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tachyfont/tachypack/pkg/buildinfo"
	"github.com/tachyfont/tachypack/pkg/fontpath"
)

// appName is the application name used for directories and display.
const appName = "tachypack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// baseDirFlag is the value of the persistent --base-dir flag.
	// Empty means "not set"; see baseDir for the full precedence.
	baseDirFlag string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tachypack locates bundled TachyFont archives",
		Long:         `Tachypack maps font names to the file-system paths of their packaged TachyFont archives, following the bundle naming convention used by the incremental font server.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := withLogger(cmd.Context(), c.Logger)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.baseDirFlag, "base-dir", "", "base directory holding the fonts/ tree (overrides env and config)")

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newResolver builds a path resolver rooted at the effective base directory.
func (c *CLI) newResolver() (*fontpath.Resolver, error) {
	dir, err := c.baseDir()
	if err != nil {
		return nil, err
	}
	return fontpath.NewResolver(dir), nil
}
