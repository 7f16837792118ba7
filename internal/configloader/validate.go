package configloader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

// ErrInvalidConfig is matched by every configuration loading or validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "backups.enabled").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// Is reports whether target is ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Err joins all errors, or returns nil when the result is valid.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]error, 0, len(r.Errors))
	for i := range r.Errors {
		errs = append(errs, &r.Errors[i])
	}
	return errors.Join(errs...)
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if !textenc.IsSupported(cfg.Encoding) {
		result.Errors = append(result.Errors, ValidationError{
			Field: "encoding",
			Value: cfg.Encoding,
			Message: fmt.Sprintf("unsupported encoding %q; must be one of: %s",
				cfg.Encoding, strings.Join(textenc.Supported(), ", ")),
		})
	}

	if _, err := langdetect.Resolve(cfg.Language); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field: "language",
			Value: cfg.Language,
			Message: fmt.Sprintf("unknown language %q; must be one of: %s",
				cfg.Language, strings.Join(langdetect.Supported(), ", ")),
		})
	}

	validateSourceExt(cfg, result)

	if cfg.SourceFormat != "" && !cfg.SourceFormat.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source_format",
			Value:   cfg.SourceFormat,
			Message: fmt.Sprintf("invalid source format %q; must be one of: auto, text, markdown", cfg.SourceFormat),
		})
	}

	if cfg.WrapWidth <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "wrap_width",
			Value:   cfg.WrapWidth,
			Message: "wrap_width must be > 0",
		})
	}

	if cfg.MethodPeriod <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "method_period",
			Value:   cfg.MethodPeriod,
			Message: "method_period must be > 0",
		})
	}

	if strings.Trim(cfg.Indent, " \t") != "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "indent",
			Value:   cfg.Indent,
			Message: "indent may contain only spaces and tabs",
		})
	}

	if cfg.LegacyTrailingClose {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "legacy_trailing_close",
			Value:   true,
			Message: "output for sources without text will have an unmatched closing brace",
		})
	}

	return result
}

func validateSourceExt(cfg *config.Config, result *ValidationResult) {
	ext := cfg.SourceExt
	switch {
	case ext == "" || ext == ".":
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source_ext",
			Value:   ext,
			Message: "source_ext must not be empty",
		})
	case !strings.HasPrefix(ext, "."):
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source_ext",
			Value:   ext,
			Message: fmt.Sprintf("source_ext must start with a dot (did you mean %q?)", "."+ext),
		})
	case strings.ContainsAny(ext, `/\`):
		result.Errors = append(result.Errors, ValidationError{
			Field:   "source_ext",
			Value:   ext,
			Message: "source_ext must not contain path separators",
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
