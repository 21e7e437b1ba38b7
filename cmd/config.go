package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitpoll/config"
)

// ConfigCmd returns the config command with its init and show subcommands.
func ConfigCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the gitpoll configuration file",
		Subcommands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "Write a configuration file with default values",
				ArgsUsage: "[path]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInitAction,
			},
			{
				Name:   "show",
				Usage:  "Print the effective configuration",
				Action: configShowAction,
			},
		},
	}
}

func configInitAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = config.FileName
	}
	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	if v := c.String("repository"); v != "" {
		cfg.Repository = v
	}
	if err := config.SaveConfig(cfg, path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}

func configShowAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, string(data))
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(c.App.ErrWriter, "Warning: %v\n", err)
	}
	return nil
}
