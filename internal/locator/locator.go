// Package locator resolves configured solver library paths into validated,
// absolute filesystem paths. It performs pure validation and never loads
// anything.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"solverd/internal/common/fsutil"
)

// Locate expands and absolutizes path, then verifies it names an existing,
// regular, readable file. The returned path is the canonical form callers
// should use for registry bookkeeping.
func Locate(path string) (string, error) {
	if path == "" {
		return "", notFoundError{path: path}
	}
	abs, err := fsutil.Canonical(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundError{path: abs}
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", notReadableError{path: abs, cause: err}
		}
		return "", fmt.Errorf("stat %q: %w", abs, err)
	}
	if !fi.Mode().IsRegular() {
		return "", notFoundError{path: abs}
	}
	f, err := os.Open(abs)
	if err != nil {
		return "", notReadableError{path: abs, cause: err}
	}
	_ = f.Close()
	return abs, nil
}
