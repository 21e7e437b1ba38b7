package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/masmgr/gitpoll/internal/logging"
)

const headFormat = "--pretty=format:%H"

// ChangeDetector compares the remote and local branch heads so that a poll
// can skip history extraction when nothing arrived.
type ChangeDetector struct {
	run       runner
	remote    string
	noCommits *DiagnosticMatcher
}

// NewChangeDetector creates a detector. noCommits recognizes the local-head
// failure that means "no commits yet".
func NewChangeDetector(r runner, ref RepositoryReference, noCommits *DiagnosticMatcher) *ChangeDetector {
	return &ChangeDetector{run: r, remote: ref.RemoteBranch(), noCommits: noCommits}
}

// RemoteHead returns the id of the latest commit on the remote-tracking branch.
func (d *ChangeDetector) RemoteHead(ctx context.Context) (string, error) {
	res, err := d.run.run(ctx, "log", d.remote, "--date-order", "-1", headFormat)
	if err != nil {
		return "", fmt.Errorf("%w: remote: %w", ErrHeadQuery, err)
	}
	return cleanHead(res.Stdout), nil
}

// LocalHead returns the latest local commit. A branch with no commits yields
// LocalHead{Exists: false} and no error.
func (d *ChangeDetector) LocalHead(ctx context.Context) (LocalHead, error) {
	res, err := d.run.run(ctx, "log", "--date-order", "-1", headFormat)
	if err != nil {
		if d.noCommits != nil && d.noCommits.Matches(stderrOf(err)) {
			logging.Logger.Debug("Local branch has no commits yet")
			return LocalHead{}, nil
		}
		return LocalHead{}, fmt.Errorf("%w: local: %w", ErrHeadQuery, err)
	}
	id := cleanHead(res.Stdout)
	return LocalHead{ID: id, Exists: id != ""}, nil
}

// Changed reports whether the remote head differs from the local head.
// A missing or malformed id on either side counts as changed.
func (d *ChangeDetector) Changed(ctx context.Context) (bool, error) {
	remote, err := d.RemoteHead(ctx)
	if err != nil {
		return false, err
	}
	local, err := d.LocalHead(ctx)
	if err != nil {
		return false, err
	}

	if !local.Exists || remote == "" {
		return true, nil
	}
	if !plumbing.IsHash(remote) || !plumbing.IsHash(local.ID) {
		logging.Logger.Warn("Unexpected head identifier", "remote", remote, "local", local.ID)
		return true, nil
	}

	changed := remote != local.ID
	logging.Logger.Debug("Compared heads", "remote", remote, "local", local.ID, "changed", changed)
	return changed, nil
}

// cleanHead strips whitespace and the single quotes a shell-style format
// string leaves around the hash.
func cleanHead(out string) string {
	return strings.Trim(strings.TrimSpace(out), "'")
}
