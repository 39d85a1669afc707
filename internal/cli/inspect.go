package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tachyfont/tachypack/pkg/archive"
	"github.com/tachyfont/tachypack/pkg/errors"
)

// inspectCommand creates the inspect command, which resolves a font name
// and lists the contents of its archive.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <font>",
		Short: "Show the contents of a font's TachyFont archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, args[0])
		},
	}
}

func (c *CLI) runInspect(cmd *cobra.Command, font string) error {
	logger := loggerFromContext(cmd.Context())

	if err := errors.ValidateFontName(font); err != nil {
		return err
	}

	r, err := c.newResolver()
	if err != nil {
		return err
	}
	path := r.ArchivePath(font)
	logger.Debugf("Inspecting %s", path)

	info, err := archive.Inspect(path)
	if err != nil {
		return err
	}

	printKeyValue("font", font)
	printKeyValue("archive", info.Path)
	printKeyValue("size", formatBytes(uint64(info.Size)))
	printKeyValue("entries", fmt.Sprintf("%d", len(info.Entries)))
	printKeyValue("extracted", formatBytes(info.TotalUncompressed()))

	for _, e := range info.Entries {
		printFile(fmt.Sprintf("%s (%s)", e.Name, formatBytes(e.UncompressedSize)))
	}
	return nil
}
