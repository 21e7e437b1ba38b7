package git

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// CommitterFilter drops entries whose committer e-mail matches a glob pattern.
type CommitterFilter struct {
	patterns []string
}

// NewCommitterFilter validates patterns and returns a filter.
func NewCommitterFilter(patterns []string) (*CommitterFilter, error) {
	cleaned := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid committer pattern %q", p)
		}
		cleaned = append(cleaned, p)
	}
	return &CommitterFilter{patterns: cleaned}, nil
}

// Ignored reports whether the entry's committer matches any pattern.
func (f *CommitterFilter) Ignored(e ChangeSetEntry) bool {
	key := e.ContributorKey()
	for _, pattern := range f.patterns {
		if matched, _ := doublestar.Match(pattern, key); matched {
			return true
		}
	}
	return false
}

// Apply returns the entries that are not ignored, in order. Sequence numbers
// are left as assigned by the parser.
func (f *CommitterFilter) Apply(entries []ChangeSetEntry) []ChangeSetEntry {
	if len(f.patterns) == 0 {
		return entries
	}
	kept := make([]ChangeSetEntry, 0, len(entries))
	for _, e := range entries {
		if f.Ignored(e) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
