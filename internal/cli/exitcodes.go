package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomoyu/internal/configloader"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

// Exit codes for gomoyu.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error outside the categories below.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrUsage marks errors caused by how the command was invoked.
var ErrUsage = errors.New("invalid usage")

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig),
		errors.Is(err, textenc.ErrUnsupportedEncoding),
		errors.Is(err, langdetect.ErrUnknownLanguage):
		return ExitConfigError
	case convert.IsIOError(err):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// usageArgs marks positional argument errors from validate as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
