package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/masmgr/gitpoll/internal/git"
)

// FileName is the configuration file looked up in the current and home directories.
const FileName = ".gitpoll.json"

// Config is the root configuration structure.
type Config struct {
	Executable           string   `json:"executable"`
	Repository           string   `json:"repository"`
	Branch               string   `json:"branch"`
	TagCommitMessage     string   `json:"tagCommitMessage"` // {0} is replaced by the build label
	TagOnSuccess         bool     `json:"tagOnSuccess"`
	AutoGetSource        bool     `json:"autoGetSource"`
	WorkingDirectory     string   `json:"workingDirectory"` // Default: current directory
	Timeout              Duration `json:"timeout"`
	IgnoreCommitters     []string `json:"ignoreCommitters"`     // Glob patterns on committer e-mail
	NoCommitsDiagnostics []string `json:"noCommitsDiagnostics"` // Regex patterns on git stderr
}

// Duration is a time.Duration that reads "10m"-style strings or integer seconds.
type Duration struct {
	time.Duration
}

// MarshalJSON writes the duration as a string such as "10m0s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts either a duration string or a number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value * float64(time.Second))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid timeout %s", string(data))
	}
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Executable:           git.DefaultExecutable,
		Branch:               git.DefaultBranch,
		TagCommitMessage:     git.DefaultTagCommitMessage,
		TagOnSuccess:         false,
		AutoGetSource:        true,
		Timeout:              Duration{10 * time.Minute},
		IgnoreCommitters:     []string{},
		NoCommitsDiagnostics: append([]string(nil), git.DefaultNoCommitsDiagnostics...),
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Repository) == "" {
		errs = append(errs, errors.New("repository is required"))
	}
	if strings.TrimSpace(c.Executable) == "" {
		errs = append(errs, errors.New("executable must not be empty"))
	}
	if strings.TrimSpace(c.Branch) == "" {
		errs = append(errs, errors.New("branch must not be empty"))
	}
	if c.Timeout.Duration <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	for _, p := range c.IgnoreCommitters {
		if !doublestar.ValidatePattern(strings.ToLower(strings.TrimSpace(p))) {
			errs = append(errs, fmt.Errorf("invalid ignoreCommitters pattern %q", p))
		}
	}
	for _, p := range c.NoCommitsDiagnostics {
		if _, err := git.CompileDiagnostic(p); err != nil {
			errs = append(errs, fmt.Errorf("invalid noCommitsDiagnostics pattern %q: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// ResolveWorkingDirectory returns the absolute working copy path. An empty
// workingDirectory means the current directory.
func (c *Config) ResolveWorkingDirectory() (string, error) {
	dir := strings.TrimSpace(c.WorkingDirectory)
	if dir == "" {
		dir = "."
	}
	return filepath.Abs(dir)
}

// Options converts the configuration into git source options.
func (c *Config) Options() (git.Options, error) {
	dir, err := c.ResolveWorkingDirectory()
	if err != nil {
		return git.Options{}, fmt.Errorf("resolve working directory: %w", err)
	}
	return git.Options{
		Executable: c.Executable,
		Repository: git.RepositoryReference{
			URL:       c.Repository,
			Branch:    c.Branch,
			LocalPath: dir,
		},
		TagCommitMessage:     c.TagCommitMessage,
		TagOnSuccess:         c.TagOnSuccess,
		AutoGetSource:        c.AutoGetSource,
		Timeout:              c.Timeout.Duration,
		IgnoreCommitters:     c.IgnoreCommitters,
		NoCommitsDiagnostics: c.NoCommitsDiagnostics,
	}, nil
}
