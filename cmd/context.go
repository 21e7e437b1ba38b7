package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitpoll/config"
	"github.com/masmgr/gitpoll/internal/git"
	"github.com/masmgr/gitpoll/internal/output"
)

// newSource builds the repository source for a command. Tests replace it.
var newSource = func(opts git.Options) (git.RepositorySource, error) {
	return git.NewSource(opts, git.NewCLIExecutor(), git.NewBillyProbe(), nil)
}

// CommandContext holds common state for command execution.
// It encapsulates the configuration loading and source wiring shared by all commands.
type CommandContext struct {
	Config  *config.Config
	Options git.Options
	Source  git.RepositorySource
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	src, err := newSource(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to set up repository source: %w", err)
	}

	return &CommandContext{
		Config:  cfg,
		Options: opts,
		Source:  src,
	}, nil
}

// executeWithContext runs fn with a freshly built CommandContext.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	return fn(ctx, c)
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		Top:        c.Int("top"),
		OutputPath: c.String("output"),
	}
}
