package runner

import (
	"errors"

	"github.com/yaklabco/gomoyu/pkg/convert"
)

// FileOutcome pairs a discovered source with its conversion.
type FileOutcome struct {
	// Path is the source file that was processed.
	Path string

	// Seed drove template selection for this file.
	Seed int64

	// Result is nil when the file could not be converted.
	Result *convert.Result

	// Error is set if the file could not be converted.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesConverted  int
	FilesErrored    int

	// Lines and Methods total the generated documents.
	Lines   int
	Methods int

	// Backups counts previous outputs kept as sidecars.
	Backups int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by source path.
	Files []FileOutcome

	Stats Stats
}

// NewResult builds a Result from outcomes that were produced outside Run,
// such as a single interactive conversion.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Err joins the per-file errors, or returns nil when every file converted.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, file := range r.Files {
		if file.Error != nil {
			errs = append(errs, file.Error)
		}
	}
	return errors.Join(errs...)
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	r.Stats.FilesConverted++
	r.Stats.Lines += outcome.Result.Lines
	r.Stats.Methods += outcome.Result.Methods
	if outcome.Result.Backup != "" {
		r.Stats.Backups++
	}
}
