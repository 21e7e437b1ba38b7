package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/masmgr/gitpoll/internal/git"
)

func sampleReport() *ChangeSetReport {
	from := time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)
	return &ChangeSetReport{
		Repository:  "https://example.com/repo.git",
		Branch:      "master",
		From:        &from,
		To:          time.Date(2009, 1, 31, 0, 0, 0, 0, time.UTC),
		GeneratedAt: time.Date(2009, 2, 1, 8, 0, 0, 0, time.UTC),
		Entries: []git.ChangeSetEntry{
			{
				Sequence: 3, Type: "Commit", CommitID: "0123456789abcdef0123456789abcdef01234567",
				Timestamp:  time.Date(2009, 1, 2, 10, 0, 0, 0, time.UTC),
				AuthorName: "Fred", AuthorEmail: "fred@example.com",
				Message: "Fix parser | handle *CDATA*",
			},
			{
				Sequence: 4, Type: "Commit", CommitID: "89abcdef0123456789abcdef0123456789abcdef",
				Timestamp:  time.Date(2009, 1, 5, 11, 30, 0, 0, time.UTC),
				AuthorName: "Ann", AuthorEmail: "ANN@example.com",
				Message: "Add sync\n\nLonger body text",
			},
			{
				Sequence: 7, Type: "Commit", CommitID: "fedcba9876543210fedcba9876543210fedcba98",
				Timestamp:  time.Date(2009, 1, 9, 9, 15, 0, 0, time.UTC),
				AuthorName: "Fred", AuthorEmail: "Fred@Example.com",
				Message: "Tag releases",
			},
		},
	}
}

func writeToTemp(t *testing.T, w ChangeSetReportWriter, report *ChangeSetReport, top int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.out")
	if err := w.Write(report, OutputOptions{Top: top, OutputPath: path}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	return string(data)
}
