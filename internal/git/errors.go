package git

import "errors"

// Error kinds returned by Source and its components. Callers match them with
// errors.Is; the underlying *ExecError remains reachable with errors.As.
var (
	// ErrSetup indicates a clone, init, config or fetch command failed.
	ErrSetup = errors.New("repository setup failed")

	// ErrHeadQuery indicates a head identifier query failed for a reason other
	// than the local branch having no commits.
	ErrHeadQuery = errors.New("head query failed")

	// ErrExtraction indicates the history retrieval command failed.
	ErrExtraction = errors.New("history extraction failed")

	// ErrHistoryParse indicates the history text was malformed.
	ErrHistoryParse = errors.New("history parsing failed")

	// ErrSync indicates clean, reset or merge failed.
	ErrSync = errors.New("working copy synchronization failed")

	// ErrTag indicates tag creation or pushing tags failed.
	ErrTag = errors.New("release tagging failed")

	// ErrTimeout is returned when a git command exceeds its timeout.
	ErrTimeout = errors.New("git command timed out")
)
