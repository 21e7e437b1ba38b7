package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// CIChangeSetWriter writes change set reports as NDJSON (one JSON object per line) for CI pipelines.
type CIChangeSetWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type          string `json:"type"`
	Repository    string `json:"repository"`
	Branch        string `json:"branch"`
	TotalChanges  int    `json:"totalChanges"`
	Contributors  int    `json:"contributors"`
	FirstSequence int    `json:"firstSequence,omitempty"`
	LastSequence  int    `json:"lastSequence,omitempty"`
}

// CIChangeEntry represents a single change in CI output.
type CIChangeEntry struct {
	Type      string `json:"type"`
	Sequence  int    `json:"sequence"`
	Commit    string `json:"commit"`
	Timestamp string `json:"timestamp"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// Write outputs the change set report as NDJSON.
func (w *CIChangeSetWriter) Write(report *ChangeSetReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	s := summarize(report.Entries)
	summary := CISummary{
		Type:          "summary",
		Repository:    report.Repository,
		Branch:        report.Branch,
		TotalChanges:  s.Total,
		Contributors:  s.Contributors,
		FirstSequence: s.FirstSequence,
		LastSequence:  s.LastSequence,
	}
	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}

	for _, e := range entries {
		entry := CIChangeEntry{
			Type:      "change",
			Sequence:  e.Sequence,
			Commit:    e.CommitID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Email:     e.AuthorEmail,
			Subject:   firstLine(e.Message),
		}
		if err := writeNDJSONLine(out, entry); err != nil {
			return err
		}
	}

	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
