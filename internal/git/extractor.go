package git

import (
	"context"
	"fmt"
	"regexp"
)

// HistoryFormat is the pretty format used for history extraction. Each commit
// renders as one <Modification> record with the committer timestamp in git's
// native "%ci" layout.
const HistoryFormat = "<Modification>" +
	"<Type>Commit %H</Type>" +
	"<ModifiedTime>%ci</ModifiedTime>" +
	"<UserName>%cN</UserName>" +
	"<EmailAddress>%ce</EmailAddress>" +
	"<Comment>%s</Comment>" +
	"</Modification>"

// modifiedTimePattern matches "2009-03-02 16:10:39 +1000" inside <ModifiedTime>.
var modifiedTimePattern = regexp.MustCompile(`<ModifiedTime>(\d{4}-\d\d-\d\d)\s(\d\d:\d\d:\d\d)\s(\+|-)(\d\d)(\d\d)</ModifiedTime>`)

// NormalizeTimestamps rewrites git's native timestamps into RFC 3339 layout:
// "2009-03-02 16:10:39 +1000" becomes "2009-03-02T16:10:39+10:00".
func NormalizeTimestamps(raw string) string {
	return modifiedTimePattern.ReplaceAllString(raw, "<ModifiedTime>${1}T${2}${3}${4}:${5}</ModifiedTime>")
}

// HistoryExtractor retrieves the full history of the remote-tracking branch.
type HistoryExtractor struct {
	run    runner
	remote string
}

// NewHistoryExtractor creates an extractor for the given repository.
func NewHistoryExtractor(r runner, ref RepositoryReference) *HistoryExtractor {
	return &HistoryExtractor{run: r, remote: ref.RemoteBranch()}
}

// Args returns the git arguments used for extraction.
func (e *HistoryExtractor) Args() []string {
	return []string{"log", e.remote, "--date-order", "--reverse", "--pretty=format:" + HistoryFormat}
}

// Extract returns the oldest-first history records with normalized timestamps.
// Comments wrapped in CDATA by the caller's format are passed through as-is.
func (e *HistoryExtractor) Extract(ctx context.Context) (string, error) {
	res, err := e.run.run(ctx, e.Args()...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExtraction, err)
	}
	return NormalizeTimestamps(res.Stdout), nil
}
