package git

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/masmgr/gitpoll/internal/logging"
)

// StateProbe inspects the working copy location and brings it to a state
// where the remote-tracking branch is up to date.
type StateProbe struct {
	fs  FileSystemProbe
	run runner
	ref RepositoryReference
}

// NewStateProbe creates a probe for ref.
func NewStateProbe(fs FileSystemProbe, r runner, ref RepositoryReference) *StateProbe {
	return &StateProbe{fs: fs, run: r, ref: ref}
}

// State derives the setup state from the filesystem.
func (p *StateProbe) State() SetupState {
	if !p.fs.DirectoryExists(p.ref.LocalPath) {
		return StateAbsent
	}
	if !p.fs.DirectoryExists(filepath.Join(p.ref.LocalPath, ".git")) {
		return StatePresentUninitialized
	}
	return StateReady
}

// Prepare runs the setup path for the current state and fetches from the
// remote. It returns true when the local repository was created by this call.
//
//	absent        -> clone
//	uninitialized -> init, 4x config, fetch
//	ready         -> fetch
func (p *StateProbe) Prepare(ctx context.Context) (bool, error) {
	state := p.State()
	logging.Logger.Debug("Repository setup state", "path", p.ref.LocalPath, "state", state.String())

	switch state {
	case StateAbsent:
		// The target does not exist yet, so clone runs from its parent.
		if _, err := p.run.runIn(ctx, filepath.Dir(filepath.Clean(p.ref.LocalPath)), "clone", p.ref.URL, p.ref.LocalPath); err != nil {
			return false, fmt.Errorf("%w: clone: %w", ErrSetup, err)
		}
		return true, nil

	case StatePresentUninitialized:
		if _, err := p.run.run(ctx, "init"); err != nil {
			return false, fmt.Errorf("%w: init: %w", ErrSetup, err)
		}
		for _, kv := range p.configEntries() {
			if _, err := p.run.run(ctx, "config", kv[0], kv[1]); err != nil {
				return false, fmt.Errorf("%w: config %s: %w", ErrSetup, kv[0], err)
			}
		}
		if err := p.fetch(ctx); err != nil {
			return false, err
		}
		return true, nil

	default:
		return false, p.fetch(ctx)
	}
}

func (p *StateProbe) configEntries() [][2]string {
	branch := p.ref.BranchName()
	return [][2]string{
		{"remote.origin.url", p.ref.URL},
		{"remote.origin.fetch", "+refs/heads/*:refs/remotes/origin/*"},
		{fmt.Sprintf("branch.%s.remote", branch), "origin"},
		{fmt.Sprintf("branch.%s.merge", branch), "refs/heads/" + branch},
	}
}

func (p *StateProbe) fetch(ctx context.Context) error {
	if _, err := p.run.run(ctx, "fetch"); err != nil {
		return fmt.Errorf("%w: fetch: %w", ErrSetup, err)
	}
	return nil
}
