package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/masmgr/gitpoll/internal/logging"
)

// DefaultExecutable is the VCS executable used when none is configured.
const DefaultExecutable = "git"

// Source is the polling adapter the orchestrator talks to. It composes the
// setup probe, change detector, extractor, parser, synchronizer and tagger.
type Source struct {
	ref       RepositoryReference
	probe     *StateProbe
	detector  *ChangeDetector
	extractor *HistoryExtractor
	parser    HistoryParser
	filter    *CommitterFilter
	sync      *Synchronizer
	tagger    *Tagger
}

// NewSource wires a Source from opts. parser may be nil, in which case the
// XML history parser is used.
func NewSource(opts Options, exec CommandExecutor, fs FileSystemProbe, parser HistoryParser) (*Source, error) {
	if strings.TrimSpace(opts.Repository.URL) == "" {
		return nil, fmt.Errorf("repository url is required")
	}
	if opts.Repository.LocalPath == "" {
		return nil, fmt.Errorf("working directory is required")
	}
	if opts.Executable == "" {
		opts.Executable = DefaultExecutable
	}
	if parser == nil {
		parser = NewXMLHistoryParser()
	}

	noCommits, err := NewDiagnosticMatcher(opts.NoCommitsDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("invalid no-commits diagnostic: %w", err)
	}
	if noCommits.Empty() {
		noCommits, _ = NewDiagnosticMatcher(DefaultNoCommitsDiagnostics)
	}

	filter, err := NewCommitterFilter(opts.IgnoreCommitters)
	if err != nil {
		return nil, err
	}

	ref := opts.Repository
	ref.Branch = ref.BranchName()

	r := runner{
		exec:       exec,
		executable: opts.Executable,
		dir:        ref.LocalPath,
		timeout:    opts.Timeout,
	}
	detector := NewChangeDetector(r, ref, noCommits)

	return &Source{
		ref:       ref,
		probe:     NewStateProbe(fs, r, ref),
		detector:  detector,
		extractor: NewHistoryExtractor(r, ref),
		parser:    parser,
		filter:    filter,
		sync:      NewSynchronizer(r, ref, detector, opts.AutoGetSource),
		tagger:    NewTagger(r, opts.TagCommitMessage, opts.TagOnSuccess),
	}, nil
}

// Repository returns the repository reference the source was built for.
func (s *Source) Repository() RepositoryReference {
	return s.ref
}

// State reports the current setup state of the working copy without running
// any commands.
func (s *Source) State() SetupState {
	return s.probe.State()
}

// GetChanges prepares the working copy, skips extraction when the remote and
// local heads match, and otherwise returns the commits committed between from
// and to (inclusive), oldest first.
func (s *Source) GetChanges(ctx context.Context, from, to time.Time) ([]ChangeSetEntry, error) {
	fresh, err := s.probe.Prepare(ctx)
	if err != nil {
		return nil, err
	}

	if !fresh {
		changed, err := s.detector.Changed(ctx)
		if err != nil {
			return nil, err
		}
		if !changed {
			logging.Logger.Info("No upstream changes", "repository", s.ref.URL, "branch", s.ref.Branch)
			return []ChangeSetEntry{}, nil
		}
	}

	raw, err := s.extractor.Extract(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.parser.Parse(raw, TimeWindow{From: from, To: to})
	if err != nil {
		return nil, err
	}
	entries = s.filter.Apply(entries)

	logging.Logger.Info("Collected changes", "repository", s.ref.URL, "branch", s.ref.Branch, "count", len(entries), "fresh", fresh)
	return entries, nil
}

// SynchronizeWorkingCopy updates the working tree from the remote-tracking
// branch when automatic source retrieval is enabled.
func (s *Source) SynchronizeWorkingCopy(ctx context.Context) error {
	return s.sync.Sync(ctx)
}

// TagRelease tags the current commit with label and pushes tags when tagging
// on success is enabled and the build succeeded.
func (s *Source) TagRelease(ctx context.Context, label string, succeeded bool) error {
	return s.tagger.Tag(ctx, label, succeeded)
}
