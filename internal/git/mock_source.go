package git

import (
	"context"
	"time"
)

// MockSource is a test double for Source.
// It allows tests to provide predefined change sets without needing a real Git repository.
type MockSource struct {
	Entries []ChangeSetEntry
	Error   error

	SyncCalls int
	Tags      []string
	LastFrom  time.Time
	LastTo    time.Time
}

// NewMockSource creates a new MockSource with the given data.
func NewMockSource(entries []ChangeSetEntry, err error) *MockSource {
	return &MockSource{
		Entries: entries,
		Error:   err,
	}
}

// GetChanges returns the predefined entries or error.
func (m *MockSource) GetChanges(_ context.Context, from, to time.Time) ([]ChangeSetEntry, error) {
	m.LastFrom, m.LastTo = from, to
	return m.Entries, m.Error
}

// SynchronizeWorkingCopy records the call and returns the predefined error.
func (m *MockSource) SynchronizeWorkingCopy(_ context.Context) error {
	m.SyncCalls++
	return m.Error
}

// TagRelease records the label when the build succeeded.
func (m *MockSource) TagRelease(_ context.Context, label string, succeeded bool) error {
	if m.Error != nil {
		return m.Error
	}
	if succeeded {
		m.Tags = append(m.Tags, label)
	}
	return nil
}

// Compile-time interface conformance check.
var _ RepositorySource = (*MockSource)(nil)
