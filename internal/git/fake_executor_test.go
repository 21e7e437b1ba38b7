package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// fakeExecutor records every command and answers from canned responses keyed
// by the joined argument list. Unknown commands succeed with empty output.
type fakeExecutor struct {
	calls     []Command
	responses map[string]fakeResponse
}

type fakeResponse struct {
	stdout string
	stderr string
	fail   bool
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{responses: make(map[string]fakeResponse)}
}

func (f *fakeExecutor) on(args string, stdout string) *fakeExecutor {
	f.responses[args] = fakeResponse{stdout: stdout}
	return f
}

func (f *fakeExecutor) fail(args string, stderr string) *fakeExecutor {
	f.responses[args] = fakeResponse{stderr: stderr, fail: true}
	return f
}

func (f *fakeExecutor) Execute(_ context.Context, cmd Command) (Result, error) {
	f.calls = append(f.calls, cmd)
	resp := f.responses[strings.Join(cmd.Args, " ")]
	res := Result{Stdout: resp.stdout, Stderr: resp.stderr}
	if resp.fail {
		res.ExitCode = 128
		return res, &ExecError{Command: cmd, Result: res, Err: errors.New("exit status 128")}
	}
	return res, nil
}

// argLines returns the recorded commands as space-joined argument lists.
func (f *fakeExecutor) argLines() []string {
	lines := make([]string, len(f.calls))
	for i, c := range f.calls {
		lines[i] = strings.Join(c.Args, " ")
	}
	return lines
}

func (f *fakeExecutor) assertCalls(t *testing.T, want ...string) {
	t.Helper()
	got := f.argLines()
	if len(got) != len(want) {
		t.Fatalf("commands = %d %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func (f *fakeExecutor) called(args string) bool {
	for _, line := range f.argLines() {
		if line == args {
			return true
		}
	}
	return false
}

// fakeFS answers DirectoryExists from a fixed set of paths.
type fakeFS struct {
	dirs    map[string]bool
	queries []string
}

func newFakeFS(dirs ...string) *fakeFS {
	fs := &fakeFS{dirs: make(map[string]bool)}
	for _, d := range dirs {
		fs.dirs[d] = true
	}
	return fs
}

func (f *fakeFS) DirectoryExists(path string) bool {
	f.queries = append(f.queries, path)
	return f.dirs[path]
}

// recordingParser captures the arguments of the last Parse call.
type recordingParser struct {
	calls  int
	raw    string
	window TimeWindow
	result []ChangeSetEntry
	err    error
}

func (p *recordingParser) Parse(raw string, window TimeWindow) ([]ChangeSetEntry, error) {
	p.calls++
	p.raw = raw
	p.window = window
	return p.result, p.err
}

func hash(n int) string {
	return fmt.Sprintf("%040x", n)
}
