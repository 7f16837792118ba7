package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomoyu/pkg/runner"
)

// jsonVersion is bumped when JSONOutput changes incompatibly.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's conversion.
type JSONFileResult struct {
	Source string `json:"source"`
	Output string `json:"output,omitempty"`
	Backup string `json:"backup,omitempty"`
	Seed   int64  `json:"seed"`

	Lines   int `json:"lines"`
	Methods int `json:"methods"`

	// Line is the one-based bookmark line in Output.
	Line int `json:"line,omitempty"`

	Detected string `json:"detected,omitempty"`
	Error    string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesConverted  int `json:"filesConverted"`
	FilesErrored    int `json:"filesErrored"`
	Lines           int `json:"lines"`
	Methods         int `json:"methods"`
	Backups         int `json:"backups"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildJSONOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesConverted, nil
}

func buildJSONOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonVersion,
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		entry := JSONFileResult{Source: file.Path, Seed: file.Seed}

		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		if res := file.Result; res != nil {
			entry.Output = res.Output
			entry.Backup = res.Backup
			entry.Lines = res.Lines
			entry.Methods = res.Methods
			entry.Line = res.Bookmark + 1
			entry.Detected = res.Detected
		}

		output.Files = append(output.Files, entry)
	}

	output.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesConverted:  result.Stats.FilesConverted,
		FilesErrored:    result.Stats.FilesErrored,
		Lines:           result.Stats.Lines,
		Methods:         result.Stats.Methods,
		Backups:         result.Stats.Backups,
	}

	return output
}
