// Package probe resolves whether a command-line argument names a readable
// regular file and, if so, how many bytes it holds.
//
// The existence check and the size lookup are deliberately a single operation
// returning an optional length, so callers never race a separate exists()
// against a later stat(). Every failure mode (missing path, directory,
// permission error) degrades to "not a file" rather than an error, because
// an argument that does not resolve to a file is simply treated as text.
package probe

import (
	"log/slog"
	"os"
)

// Prober reports the content length of a path when it names a readable
// regular file. The second return is false otherwise.
type Prober interface {
	ContentLength(path string) (int64, bool)
}

// FSProbe is the filesystem-backed Prober. It is stateless; the struct form
// keeps it injectable so report assembly can be tested with a fake.
type FSProbe struct{}

// NewFSProbe creates a new FSProbe instance.
func NewFSProbe() *FSProbe {
	return &FSProbe{}
}

// ContentLength returns the size in bytes of the regular file at path. The
// open probe confirms the file is actually readable, not merely present; the
// handle is closed immediately since only the stat size is needed.
func (p *FSProbe) ContentLength(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	if !info.Mode().IsRegular() {
		slog.Debug("Path exists but is not a regular file", "path", path)
		return 0, false
	}

	f, err := os.Open(path)
	if err != nil {
		slog.Debug("File exists but is not readable", "path", path, "error", err)
		return 0, false
	}
	defer f.Close()

	return info.Size(), true
}
