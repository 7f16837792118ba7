// Package config defines core configuration types for gomoyu.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

// SourceFormat selects how decoded text is split into source lines.
type SourceFormat string

const (
	SourceFormatAuto     SourceFormat = "auto"
	SourceFormatText     SourceFormat = "text"
	SourceFormatMarkdown SourceFormat = "markdown"
)

// IsValid returns true if the source format is known.
func (f SourceFormat) IsValid() bool {
	switch f {
	case SourceFormatAuto, SourceFormatText, SourceFormatMarkdown:
		return true
	default:
		return false
	}
}

// Defaults mirrored by NewConfig and the init template.
const (
	DefaultEncoding     = "gbk"
	DefaultLanguage     = "javascript"
	DefaultSourceExt    = ".txt"
	DefaultWrapWidth    = 80
	DefaultMethodPeriod = 15
	DefaultIndent       = "  "
)

// BackupsConfig controls whether an existing output file is kept before it is overwritten.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for gomoyu.
type Config struct {
	// Encoding is the legacy encoding of source files (e.g. "gbk", "big5", "shift_jis").
	Encoding string `yaml:"encoding"`

	// Language is the target language of generated files ("javascript" or "typescript").
	Language string `yaml:"language"`

	// SourceExt is the extension of source files, used to derive the bookmark sidecar.
	SourceExt string `yaml:"source_ext"`

	// SourceFormat selects plain-text or Markdown line splitting.
	SourceFormat SourceFormat `yaml:"source_format"`

	// WrapWidth is the maximum rune count of a comment line.
	WrapWidth int `yaml:"wrap_width"`

	// MethodPeriod is the source line interval at which a new method opens.
	MethodPeriod int `yaml:"method_period"`

	// Indent is one level of indentation in generated output.
	Indent string `yaml:"indent"`

	// LegacyTrailingClose always emits the final return/brace pair,
	// even when no method was opened.
	LegacyTrailingClose bool `yaml:"legacy_trailing_close"`

	// Backups configures sidecar backups of overwritten output.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Output overrides the derived output path.
	Output string `yaml:"-"`

	// Seed makes template selection reproducible when non-nil.
	Seed *int64 `yaml:"-"`

	// Preview is the number of output lines shown around the bookmark after converting.
	Preview int `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Encoding:     DefaultEncoding,
		Language:     DefaultLanguage,
		SourceExt:    DefaultSourceExt,
		SourceFormat: SourceFormatAuto,
		WrapWidth:    DefaultWrapWidth,
		MethodPeriod: DefaultMethodPeriod,
		Indent:       DefaultIndent,
	}
}
