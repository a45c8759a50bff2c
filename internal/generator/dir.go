package generator

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

var errNotDirectory = errors.New("path exists and is not a directory")

// EnsureParentDir creates the parent directory of output, including any missing
// intermediate directories. It does nothing when the parent is the working directory
// or already exists.
func EnsureParentDir(output string) error {
	dir := filepath.Dir(output)
	if dir == "" || dir == "." {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if info.IsDir() {
			return nil
		}
		return &DirectoryError{Dir: dir, Output: output, Err: errNotDirectory}
	}

	slog.Debug("creating output directory", "dir", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &DirectoryError{Dir: dir, Output: output, Err: err}
	}
	return nil
}
