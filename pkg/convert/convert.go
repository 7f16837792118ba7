// Package convert runs the file-level conversion: read a legacy-encoded text
// file, synthesize fake code from it, write the result next to it, and keep
// its bookmark.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomoyu/internal/logging"
	"github.com/yaklabco/gomoyu/pkg/bookmark"
	"github.com/yaklabco/gomoyu/pkg/fakecode"
	"github.com/yaklabco/gomoyu/pkg/fsutil"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/source"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

// Result describes a finished conversion.
type Result struct {
	Source string
	Output string

	// Backup is the sidecar holding the previous output, if one was made.
	Backup string

	Lines   int
	Methods int

	// Bookmark is the zero-based output line to reveal.
	Bookmark int

	// Detected is the linguist classification of the output.
	Detected string
}

// Converter converts source files. It is meant for one caller at a time.
type Converter struct {
	opts  Options
	synth *fakecode.Synthesizer
	store *bookmark.Store
}

// New returns a Converter drawing template choices from rng. A nil rng
// uses a randomly seeded generator.
func New(opts Options, rng fakecode.Rand) *Converter {
	if rng == nil {
		rng, _ = fakecode.NewRand(0, false)
	}
	return &Converter{
		opts:  opts,
		synth: fakecode.New(rng, opts.Document),
		store: bookmark.NewStore(opts.SourceExt),
	}
}

// Bookmarks returns the store used for sidecar bookmarks.
func (c *Converter) Bookmarks() *bookmark.Store {
	return c.store
}

// OutputPathFor returns where the generated document for src is written.
func (c *Converter) OutputPathFor(src string) string {
	if c.opts.Output != "" {
		return c.opts.Output
	}
	return strings.TrimSuffix(src, filepath.Ext(src)) + c.opts.Language.Extension
}

// Convert reads src, generates its fake-code document and writes it out.
// Nothing is written when reading or decoding fails.
func (c *Converter) Convert(ctx context.Context, src string) (*Result, error) {
	logger := logging.FromContext(ctx)

	raw, _, err := fsutil.ReadFile(ctx, src)
	if err != nil {
		return nil, &IOError{Op: "read", Path: src, Err: err}
	}

	text, err := textenc.Decode(raw, c.opts.Encoding)
	if err != nil {
		return nil, &IOError{Op: "decode", Path: src, Err: err}
	}

	format := source.Resolve(c.opts.SourceFormat, src)
	lines := source.Lines(text, format)
	hint := c.store.Load(src)

	logger.Debug("decoded source",
		logging.FieldPath, src,
		logging.FieldEncoding, c.opts.Encoding,
		logging.FieldFormat, format,
		logging.FieldLines, len(lines),
		logging.FieldBookmark, hint,
	)

	doc := c.synth.Document(lines, hint)

	output := c.OutputPathFor(src)
	if samePath(output, src) {
		return nil, &IOError{Op: "write", Path: output, Err: ErrOutputIsSource}
	}

	result := &Result{
		Source:   src,
		Output:   output,
		Lines:    doc.Lines,
		Methods:  doc.Methods,
		Bookmark: doc.Bookmark,
		Detected: langdetect.Detect(output, []byte(doc.Text)),
	}

	if c.opts.Backups {
		backup, err := fsutil.CreateBackup(ctx, output)
		if err != nil {
			return nil, &IOError{Op: "backup", Path: output, Err: err}
		}
		result.Backup = backup
	}

	if err := fsutil.WriteAtomic(ctx, output, []byte(doc.Text), 0); err != nil {
		return nil, &IOError{Op: "write", Path: output, Err: err}
	}

	logger.Debug("wrote fake code",
		logging.FieldOutput, output,
		logging.FieldLines, doc.Lines,
		logging.FieldMethods, doc.Methods,
		logging.FieldDetected, result.Detected,
		logging.FieldBackup, result.Backup,
	)

	return result, nil
}

// Run asks host for a source file, converts it and reveals the output at its
// bookmark. A cancelled pick returns a nil Result and no error.
func (c *Converter) Run(ctx context.Context, host Host) (*Result, error) {
	src, err := host.PickSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("pick source: %w", err)
	}
	if src == "" {
		return nil, nil
	}

	result, err := c.Convert(ctx, src)
	if err != nil {
		return nil, err
	}

	if err := host.Reveal(ctx, result.Output, result.Bookmark); err != nil {
		return result, fmt.Errorf("reveal %s: %w", result.Output, err)
	}
	return result, nil
}

// Mark stores line as the bookmark for path, which may name either the
// source or the generated file. Write failures are reported as *IOError.
func (c *Converter) Mark(ctx context.Context, path string, line int) error {
	if err := c.store.Save(ctx, path, line); err != nil {
		if errors.Is(err, bookmark.ErrNegativeLine) {
			return err
		}
		return &IOError{Op: "bookmark", Path: c.store.PathFor(path), Err: err}
	}

	logging.FromContext(ctx).Debug("saved bookmark",
		logging.FieldPath, c.store.PathFor(path),
		logging.FieldBookmark, line,
	)
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
