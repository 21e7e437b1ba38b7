package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// SyncCmd returns the sync command.
func SyncCmd() *cli.Command {
	return &cli.Command{
		Name:   "sync",
		Usage:  "Clean the working copy and merge the remote-tracking branch",
		Action: syncAction,
	}
}

func syncAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		if !ctx.Options.AutoGetSource {
			fmt.Fprintln(c.App.Writer, "Automatic source retrieval is disabled (autoGetSource=false); nothing to do.")
			return nil
		}
		if err := ctx.Source.SynchronizeWorkingCopy(c.Context); err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "Working copy %s synchronized with %s\n",
			ctx.Options.Repository.LocalPath, ctx.Options.Repository.RemoteBranch())
		return nil
	})
}
