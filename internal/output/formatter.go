package output

import (
	"time"

	"github.com/masmgr/gitpoll/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ ChangeSetReportWriter = (*ConsoleChangeSetWriter)(nil)
	_ ChangeSetReportWriter = (*JSONChangeSetWriter)(nil)
	_ ChangeSetReportWriter = (*CSVChangeSetWriter)(nil)
	_ ChangeSetReportWriter = (*MarkdownChangeSetWriter)(nil)
	_ ChangeSetReportWriter = (*CIChangeSetWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
}

// ChangeSetReport holds the changes collected by one poll.
type ChangeSetReport struct {
	Repository  string
	Branch      string
	From        *time.Time // nil when the poll covered the whole history
	To          time.Time
	GeneratedAt time.Time
	Entries     []git.ChangeSetEntry
}

// ChangeSetReportWriter writes change set reports.
type ChangeSetReportWriter interface {
	Write(report *ChangeSetReport, options OutputOptions) error
}

// NewChangeSetReportWriter creates a report writer for the specified format.
func NewChangeSetReportWriter(format OutputFormat) ChangeSetReportWriter {
	switch format {
	case FormatJSON:
		return &JSONChangeSetWriter{}
	case FormatCSV:
		return &CSVChangeSetWriter{}
	case FormatMarkdown:
		return &MarkdownChangeSetWriter{}
	case FormatCI:
		return &CIChangeSetWriter{}
	default:
		return &ConsoleChangeSetWriter{}
	}
}
