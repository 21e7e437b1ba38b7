package git

import (
	"context"
	"errors"
	"testing"
)

var uninitializedSetup = []string{
	"init",
	"config remote.origin.url xyz.git",
	"config remote.origin.fetch +refs/heads/*:refs/remotes/origin/*",
	"config branch.master.remote origin",
	"config branch.master.merge refs/heads/master",
	"fetch",
}

func newTestProbe(exec *fakeExecutor, fs *fakeFS) *StateProbe {
	ref := RepositoryReference{URL: "xyz.git", Branch: "master", LocalPath: "/work/src"}
	return NewStateProbe(fs, runner{exec: exec, executable: "git", dir: ref.LocalPath}, ref)
}

func TestStateProbe_State(t *testing.T) {
	tests := []struct {
		name string
		dirs []string
		want SetupState
	}{
		{name: "Absent", want: StateAbsent},
		{name: "Uninitialized", dirs: []string{"/work/src"}, want: StatePresentUninitialized},
		{name: "Ready", dirs: []string{"/work/src", "/work/src/.git"}, want: StateReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProbe(newFakeExecutor(), newFakeFS(tt.dirs...))
			if got := p.State(); got != tt.want {
				t.Fatalf("State = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateProbe_PrepareAbsentClones(t *testing.T) {
	exec := newFakeExecutor()
	p := newTestProbe(exec, newFakeFS())

	fresh, err := p.Prepare(context.Background())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if !fresh {
		t.Fatal("expected fresh repository after clone")
	}
	exec.assertCalls(t, "clone xyz.git /work/src")
	if exec.calls[0].Dir != "/work" {
		t.Fatalf("clone ran in %q, want /work", exec.calls[0].Dir)
	}
}

func TestStateProbe_PrepareAbsentTrailingSlash(t *testing.T) {
	exec := newFakeExecutor()
	ref := RepositoryReference{URL: "xyz.git", LocalPath: "/work/src/"}
	p := NewStateProbe(newFakeFS(), runner{exec: exec, executable: "git"}, ref)

	if _, err := p.Prepare(context.Background()); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if exec.calls[0].Dir != "/work" {
		t.Fatalf("clone ran in %q, want /work", exec.calls[0].Dir)
	}
}

func TestStateProbe_PrepareUninitialized(t *testing.T) {
	exec := newFakeExecutor()
	p := newTestProbe(exec, newFakeFS("/work/src"))

	fresh, err := p.Prepare(context.Background())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if !fresh {
		t.Fatal("expected fresh repository after init")
	}
	exec.assertCalls(t, uninitializedSetup...)
	for _, c := range exec.calls {
		if c.Dir != "/work/src" {
			t.Fatalf("%v ran in %q, want /work/src", c.Args, c.Dir)
		}
	}
}

func TestStateProbe_PrepareReadyFetches(t *testing.T) {
	exec := newFakeExecutor()
	p := newTestProbe(exec, newFakeFS("/work/src", "/work/src/.git"))

	fresh, err := p.Prepare(context.Background())
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if fresh {
		t.Fatal("existing repository reported as fresh")
	}
	exec.assertCalls(t, "fetch")
}

func TestStateProbe_PrepareFailures(t *testing.T) {
	tests := []struct {
		name   string
		dirs   []string
		failOn string
		calls  int
	}{
		{name: "Clone", failOn: "clone xyz.git /work/src", calls: 1},
		{name: "Init", dirs: []string{"/work/src"}, failOn: "init", calls: 1},
		{name: "Config", dirs: []string{"/work/src"}, failOn: "config branch.master.remote origin", calls: 4},
		{name: "Fetch", dirs: []string{"/work/src", "/work/src/.git"}, failOn: "fetch", calls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := newFakeExecutor().fail(tt.failOn, "fatal: unable to access 'xyz.git'")
			p := newTestProbe(exec, newFakeFS(tt.dirs...))

			_, err := p.Prepare(context.Background())
			if !errors.Is(err, ErrSetup) {
				t.Fatalf("error = %v, expected ErrSetup", err)
			}
			if len(exec.calls) != tt.calls {
				t.Fatalf("commands = %q, expected %d before stopping", exec.argLines(), tt.calls)
			}
		})
	}
}

func TestStateProbe_ConfigUsesBranch(t *testing.T) {
	exec := newFakeExecutor()
	ref := RepositoryReference{URL: "https://example.com/r.git", Branch: "develop", LocalPath: "/src"}
	p := NewStateProbe(newFakeFS("/src"), runner{exec: exec, executable: "git"}, ref)

	if _, err := p.Prepare(context.Background()); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	exec.assertCalls(t,
		"init",
		"config remote.origin.url https://example.com/r.git",
		"config remote.origin.fetch +refs/heads/*:refs/remotes/origin/*",
		"config branch.develop.remote origin",
		"config branch.develop.merge refs/heads/develop",
		"fetch",
	)
}
