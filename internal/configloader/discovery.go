package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/yaklabco/gomoyu/pkg/fsutil"
)

const appName = "gomoyu"

// ConfigPaths lists the configuration files found for one invocation.
// An empty field means no file was found at that layer.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// Names tried in each config directory and, for projects, each ancestor.
//
//nolint:gochecknoglobals // Read-only lookup tables.
var (
	dirConfigFiles     = []string{"config.yaml", "config.yml"}
	projectConfigFiles = []string{".gomoyu.yml", ".gomoyu.yaml", "gomoyu.yml", "gomoyu.yaml"}
	vcsRootMarkers     = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project configuration files.
// The project file is searched upward from workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), dirConfigFiles),
		User:    firstFile(userConfigDir(), dirConfigFiles),
		Project: project,
	}, nil
}

// systemConfigDir is /etc/gomoyu, or %ProgramData%\gomoyu on Windows.
func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, appName)
}

// userConfigDir follows XDG_CONFIG_HOME, defaulting to ~/.config/gomoyu.
func userConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		if path := filepath.Join(dir, name); fsutil.Exists(path) {
			return path
		}
	}
	return ""
}

// FindProjectConfig walks from startDir toward the filesystem root and
// returns the first project config file, or "" when none is found. The walk
// ends after checking a VCS root or the home directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstFile(dir, projectConfigFiles); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if isVCSRoot(dir) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// isVCSRoot reports whether dir holds a VCS marker. A .git file, as in a
// worktree, counts too.
func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
