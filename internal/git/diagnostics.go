package git

import (
	"regexp"
	"strings"
)

// DiagnosticMatcher recognizes git diagnostics on stderr by regex.
//
// git offers no exit code that distinguishes "the branch has no commits" from
// other log failures, so stderr text is the only signal. CLIExecutor pins
// LC_ALL=C to keep that text stable across locales.
type DiagnosticMatcher struct {
	patterns []*regexp.Regexp
}

// NewDiagnosticMatcher compiles patterns as case-insensitive regexps.
// Blank patterns are skipped. Returns an error if any pattern fails to compile.
func NewDiagnosticMatcher(patterns []string) (*DiagnosticMatcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := CompileDiagnostic(p)
		if err != nil {
			return nil, err
		}
		if re != nil {
			compiled = append(compiled, re)
		}
	}
	return &DiagnosticMatcher{patterns: compiled}, nil
}

// CompileDiagnostic compiles a single diagnostic pattern the way
// NewDiagnosticMatcher does: trimmed and case-insensitive. A blank pattern
// yields a nil regexp and no error.
func CompileDiagnostic(pattern string) (*regexp.Regexp, error) {
	p := strings.TrimSpace(pattern)
	if p == "" {
		return nil, nil
	}
	if !strings.HasPrefix(p, "(?i)") {
		p = "(?i)" + p
	}
	return regexp.Compile(p)
}

// Empty reports whether the matcher holds no patterns.
func (m *DiagnosticMatcher) Empty() bool {
	return len(m.patterns) == 0
}

// Matches reports whether stderr matches any pattern.
func (m *DiagnosticMatcher) Matches(stderr string) bool {
	for _, re := range m.patterns {
		if re.MatchString(stderr) {
			return true
		}
	}
	return false
}
