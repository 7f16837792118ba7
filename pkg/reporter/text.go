package reporter

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomoyu/internal/ui/pretty"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts     Options
	detailed bool
	styles   *pretty.Styles
	bw       *bufio.Writer
}

// NewTextReporter creates a text reporter. A detailed reporter prints a
// summary block per file instead of one line.
func NewTextReporter(opts Options, detailed bool) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:     opts,
		detailed: detailed,
		styles:   pretty.NewStyles(colorEnabled),
		bw:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(nil))
		return 0, nil
	}

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(r.relative(file.Path)),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Result == nil {
			continue
		}

		shown := r.relativeResult(file.Result)
		if r.detailed {
			fmt.Fprint(r.bw, r.styles.FormatSummary(shown))
		} else {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(shown))
		}
	}

	if r.opts.ShowSummary && len(result.Files) > 1 {
		fmt.Fprint(r.bw, r.formatTotals(result.Stats))
	}

	return result.Stats.FilesConverted, nil
}

// formatTotals formats the run totals as a single line.
// Example: "2 converted, 1 failed (120 lines, 9 methods)".
func (r *TextReporter) formatTotals(stats runner.Stats) string {
	var parts []string
	parts = append(parts, r.styles.Success.Render(fmt.Sprintf("%d converted", stats.FilesConverted)))
	if stats.FilesErrored > 0 {
		parts = append(parts, r.styles.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if stats.Backups > 0 {
		parts = append(parts, r.styles.Dim.Render(fmt.Sprintf("%d backed up", stats.Backups)))
	}

	return fmt.Sprintf("%s %s\n",
		strings.Join(parts, ", "),
		r.styles.Dim.Render(fmt.Sprintf("(%d %s, %d %s)",
			stats.Lines, plural(stats.Lines, "line", "lines"),
			stats.Methods, plural(stats.Methods, "method", "methods"))),
	)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func (r *TextReporter) relativeResult(res *convert.Result) *convert.Result {
	shown := *res
	shown.Source = r.relative(res.Source)
	shown.Output = r.relative(res.Output)
	if res.Backup != "" {
		shown.Backup = r.relative(res.Backup)
	}
	return &shown
}

// relative returns path relative to WorkingDir when it lies beneath it.
func (r *TextReporter) relative(path string) string {
	if r.opts.WorkingDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(r.opts.WorkingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
