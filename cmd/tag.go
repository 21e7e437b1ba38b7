package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// TagCmd returns the tag command.
func TagCmd() *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Tag the current commit with a build label and push tags",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "label",
				Aliases:  []string{"l"},
				Usage:    "Build label used as the tag name",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "failed",
				Usage: "The build failed; no tag is created",
			},
			&cli.BoolFlag{
				Name:  "tag-on-success",
				Usage: "Override tagOnSuccess from the configuration",
			},
		},
		Action: tagAction,
	}
}

func tagAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		label := c.String("label")
		succeeded := !c.Bool("failed")
		if err := ctx.Source.TagRelease(c.Context, label, succeeded); err != nil {
			return err
		}
		if succeeded && ctx.Options.TagOnSuccess {
			fmt.Fprintf(c.App.Writer, "Tagged %s and pushed tags\n", label)
		} else {
			fmt.Fprintf(c.App.Writer, "No tag created for %s\n", label)
		}
		return nil
	})
}
