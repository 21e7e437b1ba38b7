package git

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// FileSystemProbe answers existence questions about the working copy.
type FileSystemProbe interface {
	DirectoryExists(path string) bool
}

// BillyProbe implements FileSystemProbe on top of a billy filesystem.
type BillyProbe struct {
	fs   billy.Filesystem
	host bool
}

// NewBillyProbe returns a probe over the host filesystem.
func NewBillyProbe() *BillyProbe {
	return &BillyProbe{fs: osfs.New("/"), host: true}
}

// NewBillyProbeFS returns a probe over the given filesystem. Paths are passed
// through unchanged.
func NewBillyProbeFS(fs billy.Filesystem) *BillyProbe {
	return &BillyProbe{fs: fs}
}

// DirectoryExists reports whether path exists and is a directory.
func (p *BillyProbe) DirectoryExists(path string) bool {
	if path == "" {
		return false
	}
	if p.host && !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return false
		}
		path = abs
	}
	info, err := p.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// Compile-time interface conformance check.
var _ FileSystemProbe = (*BillyProbe)(nil)
