// Package bookmark persists a line offset into a generated document in a
// plain-text sidecar file next to its source.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yaklabco/gomoyu/pkg/fsutil"
)

// Suffix is appended to the logical source path to name the sidecar.
const Suffix = ".bookmark"

// ErrNegativeLine is returned when saving a line index below zero.
var ErrNegativeLine = errors.New("bookmark line must be >= 0")

// Store reads and writes bookmarks. Source and generated files share one
// sidecar: both resolve to <base><sourceExt>.bookmark.
type Store struct {
	sourceExt string
}

// NewStore returns a Store for sources carrying sourceExt (e.g. ".txt").
func NewStore(sourceExt string) *Store {
	if sourceExt != "" && !strings.HasPrefix(sourceExt, ".") {
		sourceExt = "." + sourceExt
	}
	return &Store{sourceExt: sourceExt}
}

// PathFor returns the sidecar path for either member of a source/output
// pair: the extension of path is dropped and the source extension restored.
// "notes.txt" and "notes.js" both map to "notes.txt.bookmark".
//
// The key is the base name alone, so sources that differ only by extension
// ("notes.txt" and "notes.md") share one sidecar, just as they share one
// output file. Batch runs refuse such pairs before converting.
func (s *Store) PathFor(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + s.sourceExt + Suffix
}

// Load returns the stored line index for path. A missing, unreadable,
// non-numeric or negative sidecar yields 0.
func (s *Store) Load(path string) int {
	data, err := os.ReadFile(s.PathFor(path))
	if err != nil {
		return 0
	}

	line, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || line < 0 {
		return 0
	}
	return line
}

// Save records line as the bookmark for path, replacing any earlier value.
func (s *Store) Save(ctx context.Context, path string, line int) error {
	if line < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeLine, line)
	}

	sidecar := s.PathFor(path)
	if _, err := fsutil.WriteAtomicIfChanged(ctx, sidecar, []byte(strconv.Itoa(line)), 0); err != nil {
		return fmt.Errorf("save bookmark %s: %w", sidecar, err)
	}
	return nil
}
