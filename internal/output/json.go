package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// JSONChangeSetWriter writes change set reports as JSON.
type JSONChangeSetWriter struct{}

// JSONChangeSetReport is the JSON output structure for a change set.
type JSONChangeSetReport struct {
	Repository   string           `json:"repository"`
	Branch       string           `json:"branch"`
	From         *string          `json:"from,omitempty"`
	To           string           `json:"to"`
	GeneratedAt  string           `json:"generatedAt"`
	TotalChanges int              `json:"totalChanges"`
	Contributors int              `json:"contributors"`
	Items        []JSONChangeItem `json:"items"`
}

// JSONChangeItem is the JSON output structure for a single change.
type JSONChangeItem struct {
	Sequence  int    `json:"sequence"`
	Type      string `json:"type"`
	Commit    string `json:"commit"`
	Timestamp string `json:"timestamp"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Write outputs the change set report as JSON.
func (w *JSONChangeSetWriter) Write(report *ChangeSetReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	items := make([]JSONChangeItem, len(entries))
	for i, e := range entries {
		items[i] = JSONChangeItem{
			Sequence:  e.Sequence,
			Type:      e.Type,
			Commit:    e.CommitID,
			Timestamp: e.Timestamp.Format(time.RFC3339),
			Author:    e.AuthorName,
			Email:     e.AuthorEmail,
			Message:   e.Message,
		}
	}

	summary := summarize(report.Entries)
	jsonReport := JSONChangeSetReport{
		Repository:   report.Repository,
		Branch:       report.Branch,
		From:         formatFromDate(report.From),
		To:           report.To.Format(reportDateLayout),
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalChanges: summary.Total,
		Contributors: summary.Contributors,
		Items:        items,
	}

	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, jsonData, 0644)
	}

	fmt.Println(string(jsonData))
	return nil
}
