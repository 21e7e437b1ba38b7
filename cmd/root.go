package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitpoll/config"
	"github.com/masmgr/gitpoll/internal/logging"
	"github.com/masmgr/gitpoll/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitpoll",
		Usage:   "Poll a git repository for changes on behalf of a build server",
		Version: "1.0.0",
		Commands: []*cli.Command{
			PollCmd(),
			SyncCmd(),
			TagCmd(),
			StatusCmd(),
			ConfigCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Write logs as JSON to this file",
			},
		}, sourceFlags()...),
		Before: initLogging,
		After:  closeLogging,
	}
}

// sourceFlags override the matching configuration file values.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repository",
			Aliases: []string{"r"},
			Usage:   "Remote repository URL",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to poll (default: from config or 'master')",
		},
		&cli.StringFlag{
			Name:    "working-dir",
			Aliases: []string{"w"},
			Usage:   "Local working copy directory (default: current directory)",
		},
		&cli.StringFlag{
			Name:  "executable",
			Usage: "Git executable",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout for each git command",
		},
	}
}

var closeLog = func() error { return nil }

func initLogging(c *cli.Context) error {
	closer, err := logging.Initialize(c.Bool("debug"), c.String("log-file"))
	if err != nil {
		return err
	}
	closeLog = closer
	return nil
}

func closeLogging(_ *cli.Context) error {
	return closeLog()
}

// parseDateFlag parses a date string flag. Both YYYY-MM-DD and RFC 3339 are accepted.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or RFC3339)", s)
	}
	return &t, nil
}

// parseUntilFlag parses an upper bound. A bare YYYY-MM-DD date covers the
// whole day, so it resolves to the last instant of that day.
func parseUntilFlag(s string) (*time.Time, error) {
	t, err := parseDateFlag(s)
	if err != nil || t == nil {
		return t, err
	}
	if _, err := time.Parse("2006-01-02", s); err == nil {
		end := t.Add(24*time.Hour - time.Nanosecond)
		return &end, nil
	}
	return t, nil
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch strings.ToLower(s) {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v := c.String("repository"); v != "" {
		cfg.Repository = v
	}
	if v := c.String("branch"); v != "" {
		cfg.Branch = v
	}
	if v := c.String("working-dir"); v != "" {
		cfg.WorkingDirectory = v
	}
	if v := c.String("executable"); v != "" {
		cfg.Executable = v
	}
	if c.IsSet("tag-on-success") {
		cfg.TagOnSuccess = c.Bool("tag-on-success")
	}
	if c.IsSet("timeout") {
		cfg.Timeout = config.Duration{Duration: c.Duration("timeout")}
	}

	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
