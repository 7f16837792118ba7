// Package fsutil provides file system primitives for gomoyu: bounded reads
// with error categorization, atomic writes, and sidecar backups.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// MaxFileSize bounds how much of a source file is read into memory (100 MB).
const MaxFileSize = 100 * 1024 * 1024

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the file exceeds MaxFileSize.
	ErrTooLarge = errors.New("file too large")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
}

// ReadFile reads a regular file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", classify(err), path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if stat.Size() > MaxFileSize {
		return nil, nil, fmt.Errorf("%w: %s (%d bytes, max %d)", ErrTooLarge, path, stat.Size(), MaxFileSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", classify(err), path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(content) > MaxFileSize {
		return nil, nil, fmt.Errorf("%w: %s", ErrTooLarge, path)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    int64(len(content)),
	}

	return content, info, nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// classify maps an os error onto one of the package sentinels where possible.
func classify(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, os.ErrPermission):
		return ErrPermissionDenied
	default:
		return err
	}
}
