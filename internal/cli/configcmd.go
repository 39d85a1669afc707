package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tachyfont/tachypack/pkg/errors"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tachypack configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cmd.Println(path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand, which prints the
// effective configuration and where each value came from.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			dir, err := c.baseDir()
			if err != nil {
				return err
			}

			printKeyValue("config", path)
			printKeyValue("base-dir", dir)
			printKeyValue("source", c.baseDirSource())
			return nil
		},
	}
}

// configInitCommand creates the "config init" subcommand, which writes a
// starter configuration file.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidConfig, "config already exists at %s (use --force to overwrite)", path)
			}

			dir, err := c.baseDir()
			if err != nil {
				return err
			}
			written, err := writeConfig(&Config{BaseDir: dir})
			if err != nil {
				return err
			}
			printSuccess("Wrote %s", written)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
