package output

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/masmgr/gitpoll/internal/git"
)

const (
	reportDateLayout     = "2006-01-02"
	reportDateTimeLayout = "2006-01-02T15:04:05"
)

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func dateRangeLabelAndValue(from *time.Time, to time.Time) (string, string) {
	if from != nil {
		return "Period", from.Format(reportDateLayout) + " to " + to.Format(reportDateLayout)
	}
	return "Until", to.Format(reportDateLayout)
}

func formatFromDate(from *time.Time) *string {
	if from == nil {
		return nil
	}
	formatted := from.Format(reportDateLayout)
	return &formatted
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

// truncateMessage shortens msg to maxLen runes, ending in "...".
func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	return string(runes[:maxLen-3]) + "..."
}

// firstLine returns the subject line of a commit message.
func firstLine(msg string) string {
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		return strings.TrimSpace(msg[:i])
	}
	return msg
}

// changeSummary holds aggregate figures shown in report headers.
type changeSummary struct {
	Total         int
	Contributors  int
	FirstSequence int
	LastSequence  int
}

func summarize(entries []git.ChangeSetEntry) changeSummary {
	s := changeSummary{Total: len(entries)}
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.ContributorKey()] = struct{}{}
		if s.FirstSequence == 0 || e.Sequence < s.FirstSequence {
			s.FirstSequence = e.Sequence
		}
		if e.Sequence > s.LastSequence {
			s.LastSequence = e.Sequence
		}
	}
	s.Contributors = len(seen)
	return s
}
