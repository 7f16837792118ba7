package convert

import (
	"errors"
	"fmt"
)

// ErrOutputIsSource is returned when the derived output path would overwrite the source.
var ErrOutputIsSource = errors.New("output path equals source path")

// IOError reports a failed file step of a conversion or bookmark update.
type IOError struct {
	// Op is the failed step: "read", "decode", "backup", "write" or "bookmark".
	Op string

	// Path is the file the step operated on.
	Path string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err is or wraps an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
