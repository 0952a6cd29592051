// Package fileutil provides the small filesystem probes the pipeline uses
// between stages.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Exists reports whether path names an existing regular file. Directories do
// not count: a stage output is always a file.
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// EnsureDir creates dir and any missing parents. Idempotent.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
