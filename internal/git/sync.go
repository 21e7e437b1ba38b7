package git

import (
	"context"
	"fmt"

	"github.com/masmgr/gitpoll/internal/logging"
)

// Synchronizer brings the working tree in line with the remote-tracking branch.
type Synchronizer struct {
	run      runner
	detector *ChangeDetector
	remote   string
	enabled  bool
}

// NewSynchronizer creates a synchronizer. When enabled is false Sync is a no-op.
func NewSynchronizer(r runner, ref RepositoryReference, detector *ChangeDetector, enabled bool) *Synchronizer {
	return &Synchronizer{run: r, detector: detector, remote: ref.RemoteBranch(), enabled: enabled}
}

// Sync cleans untracked and ignored files, hard-resets to the local head when
// there is one, and merges the remote-tracking branch. Steps already run are
// not undone when a later step fails; merge conflicts are not resolved.
func (s *Synchronizer) Sync(ctx context.Context) error {
	if !s.enabled {
		logging.Logger.Debug("Source synchronization disabled")
		return nil
	}

	if _, err := s.run.run(ctx, "clean", "-d", "-f", "-x"); err != nil {
		return fmt.Errorf("%w: clean: %w", ErrSync, err)
	}

	head, err := s.detector.LocalHead(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSync, err)
	}
	if head.Exists {
		if _, err := s.run.run(ctx, "reset", "HEAD", "--hard"); err != nil {
			return fmt.Errorf("%w: reset: %w", ErrSync, err)
		}
	}

	if _, err := s.run.run(ctx, "merge", s.remote); err != nil {
		return fmt.Errorf("%w: merge %s: %w", ErrSync, s.remote, err)
	}

	logging.Logger.Info("Working copy synchronized", "remote", s.remote)
	return nil
}
