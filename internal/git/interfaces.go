package git

import (
	"context"
	"time"
)

// RepositorySource defines the operations the orchestrator invokes on a
// source-control adapter.
// This abstraction allows for easier testing and potential alternative implementations.
type RepositorySource interface {
	// GetChanges returns the ordered change-set entries committed between from and to.
	GetChanges(ctx context.Context, from, to time.Time) ([]ChangeSetEntry, error)
	// SynchronizeWorkingCopy brings the working tree up to date with the remote.
	SynchronizeWorkingCopy(ctx context.Context) error
	// TagRelease tags and pushes label after a successful build.
	TagRelease(ctx context.Context, label string, succeeded bool) error
}

// Compile-time interface conformance check.
var _ RepositorySource = (*Source)(nil)
