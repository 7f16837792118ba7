package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a file path to form its sidecar backup.
const BackupSuffix = ".gomoyu.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the current content of path to its sidecar backup,
// replacing any older backup so it always holds the previous generation.
// It returns the backup path, or "" when path does not exist.
func CreateBackup(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("stat original for backup: %w", classify(err))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read original for backup: %w", classify(err))
	}

	backupPath := BackupPath(path)
	if err := WriteAtomic(ctx, backupPath, content, stat.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	return backupPath, nil
}
