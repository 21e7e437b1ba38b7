package output

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

// CSVChangeSetWriter writes change set reports as CSV.
type CSVChangeSetWriter struct{}

// Write outputs one row per change.
func (w *CSVChangeSetWriter) Write(report *ChangeSetReport, options OutputOptions) error {
	entries := limitTop(report.Entries, options.Top)

	writer, file, err := createCSVWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	headers := []string{"Sequence", "Type", "Commit", "Timestamp", "Author", "Email", "Message"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			strconv.Itoa(e.Sequence),
			e.Type,
			e.CommitID,
			e.Timestamp.Format(time.RFC3339),
			e.AuthorName,
			e.AuthorEmail,
			e.Message,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func createCSVWriter(outputPath string) (*csv.Writer, *os.File, error) {
	out, file, err := openOutputWriter(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return csv.NewWriter(out), file, nil
}
