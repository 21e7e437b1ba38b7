package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleChangeSetWriter writes change set reports to the console.
type ConsoleChangeSetWriter struct{}

// Write outputs the change set report as a colored table.
func (w *ConsoleChangeSetWriter) Write(report *ChangeSetReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := summarize(report.Entries)
	label, value := dateRangeLabelAndValue(report.From, report.To)

	color.New(color.FgGreen).Fprintln(out, "Change Set")
	fmt.Fprintf(out, "Repository: %s (%s)\n", report.Repository, report.Branch)
	fmt.Fprintf(out, "%s: %s\n", label, value)
	fmt.Fprintf(out, "Changes: %d, Contributors: %d\n\n", summary.Total, summary.Contributors)

	if len(report.Entries) == 0 {
		color.New(color.FgYellow).Fprintln(out, "No changes detected.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tCommit\tWhen\tAuthor\tMessage")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			e.Sequence,
			color.CyanString(e.ShortID()),
			e.Timestamp.Format(reportDateTimeLayout),
			e.AuthorName,
			truncateMessage(firstLine(e.Message), 60),
		)
	}

	return tw.Flush()
}
