package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gomoyu/internal/logging"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/fakecode"
)

// ErrSharedOutput is returned when two sources would be written to the same
// output file, either through an explicit output path or because they differ
// only by extension.
var ErrSharedOutput = errors.New("sources share an output path")

// Runner converts many files with the same conversion options.
type Runner struct {
	// Convert configures every per-file Converter.
	Convert convert.Options

	// Seed is the base seed; the file at sorted index i uses Seed+i, so
	// output does not depend on worker scheduling.
	Seed int64
}

// New creates a Runner.
func New(opts convert.Options, seed int64) *Runner {
	return &Runner{Convert: opts, Seed: seed}
}

// Run discovers files under opts.Paths and converts them concurrently.
// A file that fails is recorded in its FileOutcome and does not stop the
// others; the returned error is reserved for discovery and cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := r.checkOutputs(files); err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	logging.FromContext(ctx).Debug("discovered sources", logging.FieldFiles, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan int)
	outcomes := make([]FileOutcome, len(files))
	done := make([]bool, len(files))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				outcomes[idx] = r.convertOne(ctx, files[idx], r.Seed+int64(idx))
				done[idx] = true
			}
		}()
	}

feed:
	for idx := range files {
		select {
		case <-ctx.Done():
			break feed
		case workCh <- idx:
		}
	}
	close(workCh)
	wg.Wait()

	for idx, outcome := range outcomes {
		if done[idx] {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// checkOutputs rejects a file set in which two sources map to one output.
// Nothing has been written when it fails.
func (r *Runner) checkOutputs(files []string) error {
	if r.Convert.Output != "" && len(files) > 1 {
		return fmt.Errorf("%w: %d sources match explicit output %s",
			ErrSharedOutput, len(files), r.Convert.Output)
	}

	conv := convert.New(r.Convert, nil)
	owners := make(map[string]string, len(files))
	for _, file := range files {
		out := conv.OutputPathFor(file)
		if prev, ok := owners[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrSharedOutput, prev, file, out)
		}
		owners[out] = file
	}
	return nil
}

func (r *Runner) convertOne(ctx context.Context, path string, seed int64) FileOutcome {
	outcome := FileOutcome{Path: path, Seed: seed}

	rng, _ := fakecode.NewRand(seed, true)
	res, err := convert.New(r.Convert, rng).Convert(ctx, path)
	if err != nil {
		outcome.Error = err
		logging.FromContext(ctx).Debug("conversion failed",
			logging.FieldPath, path,
			logging.FieldError, err,
		)
		return outcome
	}
	outcome.Result = res
	return outcome
}
