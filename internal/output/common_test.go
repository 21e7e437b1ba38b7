package output

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestLimitTop(t *testing.T) {
	items := []int{1, 2, 3}

	tests := []struct {
		name string
		top  int
		want []int
	}{
		{name: "NoLimitWhenZero", top: 0, want: []int{1, 2, 3}},
		{name: "NoLimitWhenNegative", top: -1, want: []int{1, 2, 3}},
		{name: "Limited", top: 2, want: []int{1, 2}},
		{name: "NoLimitWhenTopExceedsLength", top: 5, want: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := limitTop(items, tt.top)
			if len(got) != len(tt.want) {
				t.Fatalf("len(limitTop(..., %d)) = %d, want %d", tt.top, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("limitTop(..., %d)[%d] = %d, want %d", tt.top, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDateRangeLabelAndValue(t *testing.T) {
	to := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("WithFrom", func(t *testing.T) {
		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		label, value := dateRangeLabelAndValue(&from, to)
		if label != "Period" || value != "2026-02-01 to 2026-02-10" {
			t.Fatalf("got (%q, %q)", label, value)
		}
	})

	t.Run("WithoutFrom", func(t *testing.T) {
		label, value := dateRangeLabelAndValue(nil, to)
		if label != "Until" || value != "2026-02-10" {
			t.Fatalf("got (%q, %q)", label, value)
		}
	})
}

func TestTruncateMessage(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		maxLen   int
		expected string
	}{
		{name: "Short message", msg: "hello", maxLen: 40, expected: "hello"},
		{name: "Exact length", msg: "1234567890", maxLen: 10, expected: "1234567890"},
		{name: "Over max length", msg: "a very long message here", maxLen: 10, expected: "a very ..."},
		{name: "Empty message", msg: "", maxLen: 40, expected: ""},
		{name: "Multibyte fits", msg: "日本語のコミット", maxLen: 8, expected: "日本語のコミット"},
		{name: "Multibyte cut", msg: "abcde日本語のコミット", maxLen: 8, expected: "abcde..."},
		{name: "Cut inside multibyte run", msg: "ab日本語のコミットです", maxLen: 6, expected: "ab日..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateMessage(tt.msg, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateMessage(%q, %d) = %q, expected %q", tt.msg, tt.maxLen, result, tt.expected)
			}
			if !utf8.ValidString(result) {
				t.Errorf("truncateMessage(%q, %d) returned invalid UTF-8 %q", tt.msg, tt.maxLen, result)
			}
		})
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("subject\n\nbody"); got != "subject" {
		t.Errorf("firstLine = %q", got)
	}
	if got := firstLine("single"); got != "single" {
		t.Errorf("firstLine = %q", got)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Pipe", input: "a|b", expected: "a\\|b"},
		{name: "Asterisk", input: "a*b", expected: "a\\*b"},
		{name: "Underscore", input: "a_b", expected: "a\\_b"},
		{name: "Backtick", input: "a`b", expected: "a\\`b"},
		{name: "No specials", input: "plain text", expected: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := escapeMarkdown(tt.input); result != tt.expected {
				t.Errorf("escapeMarkdown(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := summarize(sampleReport().Entries)
	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.Contributors != 2 {
		t.Errorf("Contributors = %d, want 2 (e-mail compared case-insensitively)", s.Contributors)
	}
	if s.FirstSequence != 3 || s.LastSequence != 7 {
		t.Errorf("sequence range = %d..%d, want 3..7", s.FirstSequence, s.LastSequence)
	}

	empty := summarize(nil)
	if empty.Total != 0 || empty.FirstSequence != 0 {
		t.Errorf("summarize(nil) = %+v", empty)
	}
}
