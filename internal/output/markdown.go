package output

import (
	"fmt"
	"strings"
)

// MarkdownChangeSetWriter writes change set reports as Markdown.
type MarkdownChangeSetWriter struct{}

// Write outputs the change set report as a Markdown table.
func (w *MarkdownChangeSetWriter) Write(report *ChangeSetReport, options OutputOptions) error {
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

	fmt.Fprintln(out, "# Change Set")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.Repository)
	fmt.Fprintf(out, "**Branch:** `%s`\n\n", report.Branch)
	fmt.Fprintf(out, "**%s:** %s\n\n", label, value)
	fmt.Fprintf(out, "**Changes:** %d (%d contributors)\n\n", summary.Total, summary.Contributors)

	if len(entries) == 0 {
		fmt.Fprintln(out, "_No changes detected._")
		return nil
	}

	fmt.Fprintln(out, "| # | Commit | When | Author | Message |")
	fmt.Fprintln(out, "|---|--------|------|--------|---------|")
	for _, e := range entries {
		fmt.Fprintf(out, "| %d | `%s` | %s | %s | %s |\n",
			e.Sequence, e.ShortID(), e.Timestamp.Format(reportDateTimeLayout),
			escapeMarkdown(e.AuthorName), escapeMarkdown(truncateMessage(firstLine(e.Message), 72)))
	}

	return nil
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
	)
	return replacer.Replace(s)
}
