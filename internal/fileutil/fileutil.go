// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty = errors.New("path cannot be empty")
	ErrPathIsDir = errors.New("path is a directory")
)

// ReplaceFile writes data to path through a temporary file in the same
// directory, then renames it over path. Readers see either the old file or
// the complete new one, never a partial write. With several writers the last
// rename wins.
func ReplaceFile(path string, data []byte, perm os.FileMode) error {
	if path == "" {
		return ErrPathEmpty
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPathIsDir, path)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	// CreateTemp uses 0600.
	if chmodErr := os.Chmod(tmpPath, perm); chmodErr != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", chmodErr)
	}

	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, renameErr)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "tmux" -> false (name)
//   - "./popup.yaml" -> true (relative path)
//   - "../shared/popup.yaml" -> true (parent path)
//   - "/usr/share/fonts/dejavu.ttf" -> true (absolute)
//   - "C:\fonts\math.otf" -> true (Windows)
//   - "solarized-dark" -> false (hyphenated name)
//   - "sub/dir" -> true (contains separator)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
