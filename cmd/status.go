package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitpoll/internal/git"
)

// StatusCmd returns the status command.
func StatusCmd() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show the setup state of the local working copy",
		Action: statusAction,
	}
}

// stateReporter is implemented by sources that can inspect the working copy.
type stateReporter interface {
	State() git.SetupState
}

func statusAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		out := c.App.Writer
		ref := ctx.Options.Repository

		fmt.Fprintf(out, "Repository:   %s\n", ref.URL)
		fmt.Fprintf(out, "Branch:       %s\n", ref.BranchName())
		fmt.Fprintf(out, "Working copy: %s\n", ref.LocalPath)

		reporter, ok := ctx.Source.(stateReporter)
		if !ok {
			fmt.Fprintln(out, "State:        unknown")
			return nil
		}

		state := reporter.State()
		fmt.Fprintf(out, "State:        %s\n", stateColor(state)(state.String()))
		switch state {
		case git.StateAbsent:
			fmt.Fprintln(out, "The next poll clones the repository.")
		case git.StatePresentUninitialized:
			fmt.Fprintln(out, "The next poll initializes the directory and fetches.")
		default:
			fmt.Fprintln(out, "The next poll fetches and compares heads.")
		}
		return nil
	})
}

func stateColor(state git.SetupState) func(string, ...interface{}) string {
	switch state {
	case git.StateReady:
		return color.GreenString
	case git.StatePresentUninitialized:
		return color.YellowString
	default:
		return color.RedString
	}
}
