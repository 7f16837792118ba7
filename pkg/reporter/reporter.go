// Package reporter writes the outcome of a conversion run for people or
// for editor tooling.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomoyu/pkg/runner"
)

// Reporter formats and writes conversion results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files converted and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts, false), nil
	case FormatSummary:
		return NewTextReporter(opts, true), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
