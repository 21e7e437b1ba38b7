package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/gitpoll/internal/output"
)

// PollCmd returns the poll command.
func PollCmd() *cli.Command {
	return &cli.Command{
		Name:    "poll",
		Aliases: []string{"p"},
		Usage:   "Fetch from the remote and list commits that arrived in a time window",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "since",
				Usage: "Report commits since this time (YYYY-MM-DD or RFC3339)",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "Report commits until this time; a bare date includes the whole day (default: now)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format (console, json, csv, markdown, ci)",
				Value:   "console",
			},
			&cli.IntFlag{
				Name:    "top",
				Aliases: []string{"n"},
				Usage:   "Maximum number of changes to list (0 = all)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: stdout)",
			},
		},
		Action: pollAction,
	}
}

func pollAction(c *cli.Context) error {
	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseUntilFlag(c.String("until"))
	if err != nil {
		return fmt.Errorf("invalid until date: %w", err)
	}

	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		from := time.Time{}
		if since != nil {
			from = *since
		}
		to := time.Now()
		if until != nil {
			to = *until
		}

		entries, err := ctx.Source.GetChanges(c.Context, from, to)
		if err != nil {
			return err
		}

		report := &output.ChangeSetReport{
			Repository:  ctx.Options.Repository.URL,
			Branch:      ctx.Options.Repository.BranchName(),
			From:        since,
			To:          to,
			GeneratedAt: time.Now(),
			Entries:     entries,
		}

		opts := OutputOptions(c)
		return output.NewChangeSetReportWriter(opts.Format).Write(report, opts)
	})
}
