package git

import (
	"strings"
	"time"
)

// ChangeSetEntry is one commit within a polling window.
type ChangeSetEntry struct {
	// Sequence is the 1-based position of the commit in the complete
	// chronologically ascending history, assigned before any filtering.
	Sequence    int
	Type        string
	CommitID    string
	Timestamp   time.Time
	AuthorName  string
	AuthorEmail string
	Message     string
}

// ContributorKey returns a normalized identifier for grouping committers.
func (e ChangeSetEntry) ContributorKey() string {
	return strings.ToLower(e.AuthorEmail)
}

// ShortID returns the first 8 characters of the commit id.
func (e ChangeSetEntry) ShortID() string {
	if len(e.CommitID) <= 8 {
		return e.CommitID
	}
	return e.CommitID[:8]
}

// TimeWindow is a closed interval of time.
type TimeWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies in the window, both bounds inclusive.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// SetupState describes what is on disk at the working copy location.
type SetupState int

const (
	StateAbsent SetupState = iota
	StatePresentUninitialized
	StateReady
)

// String returns a string representation of the setup state.
func (s SetupState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StatePresentUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// DefaultBranch is used when no branch is configured.
const DefaultBranch = "master"

// RepositoryReference identifies the remote repository and its local checkout.
type RepositoryReference struct {
	URL       string
	Branch    string
	LocalPath string
}

// BranchName returns the configured branch or DefaultBranch.
func (r RepositoryReference) BranchName() string {
	if b := strings.TrimSpace(r.Branch); b != "" {
		return b
	}
	return DefaultBranch
}

// RemoteBranch returns the remote-tracking ref for the branch, e.g. origin/master.
func (r RepositoryReference) RemoteBranch() string {
	return "origin/" + r.BranchName()
}

// LocalHead is the result of querying the local branch head.
// Exists is false when the local branch has no commits yet.
type LocalHead struct {
	ID     string
	Exists bool
}

// Options configures a Source.
type Options struct {
	Executable       string
	Repository       RepositoryReference
	TagCommitMessage string
	TagOnSuccess     bool
	AutoGetSource    bool
	Timeout          time.Duration
	// IgnoreCommitters holds glob patterns matched against committer e-mails.
	IgnoreCommitters []string
	// NoCommitsDiagnostics holds regex patterns recognizing "no commits yet" stderr.
	NoCommitsDiagnostics []string
}

// DefaultTagCommitMessage is the tag message template; {0} is replaced by the label.
const DefaultTagCommitMessage = "gitpoll build {0}"

// DefaultNoCommitsDiagnostics are the stderr patterns git prints when the
// current branch has no commits.
var DefaultNoCommitsDiagnostics = []string{
	`fatal: bad default revision 'HEAD'`,
	`does not have any commits yet`,
}
