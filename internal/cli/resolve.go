package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tachyfont/tachypack/pkg/archive"
	"github.com/tachyfont/tachypack/pkg/errors"
)

// resolveCommand creates the resolve command, which maps font names to
// archive paths. Resolution itself never touches the file system; with
// --check the command additionally stats each resolved path, which is the
// caller-side existence validation the resolver deliberately leaves out.
func (c *CLI) resolveCommand() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "resolve <font>...",
		Short: "Map font names to TachyFont archive paths",
		Long: `Resolve one or more font names to the paths of their packaged archives.

Fonts live under <base-dir>/fonts/; the NotoSansJP family has its own
subdirectory. The resolved path is printed whether or not the archive
exists; use --check to verify.

Examples:
  tachypack resolve NotoSansJP-Bold
  tachypack resolve Roboto-Regular Roboto-Bold --check
  tachypack --base-dir /srv/app resolve NotoSansJP-Regular`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify that each resolved archive exists")

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, fonts []string, check bool) error {
	logger := loggerFromContext(cmd.Context())

	r, err := c.newResolver()
	if err != nil {
		return err
	}
	logger.Debugf("Base directory: %s", r.BaseDir())

	missing := 0
	for _, font := range fonts {
		path := r.ArchivePath(font)

		if !check {
			fmt.Fprintln(cmd.OutOrStdout(), path)
			continue
		}

		if err := errors.ValidateFontName(font); err != nil {
			printWarning("%s: %s", font, errors.UserMessage(err))
			missing++
			continue
		}
		if err := archive.Stat(path); err != nil {
			printError("%s %s %s", font, iconArrow, path)
			logger.Debugf("Check failed: %v", err)
			missing++
			continue
		}
		printSuccess("%s %s %s", font, iconArrow, path)
	}

	if missing > 0 {
		return errors.New(errors.ErrCodeFontNotFound, "%d of %d archives missing", missing, len(fonts))
	}
	return nil
}
