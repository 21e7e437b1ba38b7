package git

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestNormalizeTimestamps(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "PositiveOffset",
			in:   "<ModifiedTime>2009-03-02 16:10:39 +1000</ModifiedTime>",
			want: "<ModifiedTime>2009-03-02T16:10:39+10:00</ModifiedTime>",
		},
		{
			name: "NegativeOffset",
			in:   "<ModifiedTime>2021-11-30 08:00:01 -0530</ModifiedTime>",
			want: "<ModifiedTime>2021-11-30T08:00:01-05:30</ModifiedTime>",
		},
		{
			name: "AlreadyNormalized",
			in:   "<ModifiedTime>2009-03-02T16:10:39+10:00</ModifiedTime>",
			want: "<ModifiedTime>2009-03-02T16:10:39+10:00</ModifiedTime>",
		},
		{
			name: "DateInCommentUntouched",
			in:   "<Comment>released 2009-03-02 16:10:39 +1000</Comment>",
			want: "<Comment>released 2009-03-02 16:10:39 +1000</Comment>",
		},
		{
			name: "Multiple",
			in:   "<ModifiedTime>2000-01-01 00:00:00 +0000</ModifiedTime><ModifiedTime>2001-01-01 00:00:00 +0100</ModifiedTime>",
			want: "<ModifiedTime>2000-01-01T00:00:00+00:00</ModifiedTime><ModifiedTime>2001-01-01T00:00:00+01:00</ModifiedTime>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTimestamps(tt.in); got != tt.want {
				t.Fatalf("NormalizeTimestamps(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHistoryExtractor_Args(t *testing.T) {
	ref := RepositoryReference{URL: "xyz.git", Branch: "develop", LocalPath: "/src"}
	e := NewHistoryExtractor(runner{}, ref)

	got := strings.Join(e.Args(), " ")
	want := "log origin/develop --date-order --reverse --pretty=format:" + HistoryFormat
	if got != want {
		t.Fatalf("Args = %q, want %q", got, want)
	}
}

func TestHistoryExtractor_ExtractNormalizes(t *testing.T) {
	exec := newFakeExecutor()
	ref := RepositoryReference{URL: "xyz.git", Branch: "master", LocalPath: "/src"}
	e := NewHistoryExtractor(runner{exec: exec, executable: "git", dir: "/src"}, ref)

	raw := "<Modification><Type>Commit abc</Type><ModifiedTime>2009-03-02 16:10:39 +1000</ModifiedTime>" +
		"<Comment><![CDATA[a & b]]></Comment></Modification>"
	exec.on(strings.Join(e.Args(), " "), raw)

	out, err := e.Extract(context.Background())
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(out, "<ModifiedTime>2009-03-02T16:10:39+10:00</ModifiedTime>") {
		t.Fatalf("timestamp not normalized: %s", out)
	}
	if !strings.Contains(out, "<![CDATA[a & b]]>") {
		t.Fatalf("CDATA wrapping altered: %s", out)
	}
	if exec.calls[0].Dir != "/src" || exec.calls[0].Executable != "git" {
		t.Fatalf("command ran as %q in %q", exec.calls[0].Executable, exec.calls[0].Dir)
	}
}

func TestHistoryExtractor_Failure(t *testing.T) {
	exec := newFakeExecutor()
	ref := RepositoryReference{URL: "xyz.git", LocalPath: "/src"}
	e := NewHistoryExtractor(runner{exec: exec, executable: "git"}, ref)
	exec.fail(strings.Join(e.Args(), " "), "fatal: bad revision 'origin/master'")

	_, err := e.Extract(context.Background())
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("error = %v, expected ErrExtraction", err)
	}
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected *ExecError in chain: %v", err)
	}
}
