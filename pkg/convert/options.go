package convert

import (
	"fmt"

	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/fakecode"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

// Options controls a Converter.
type Options struct {
	// Encoding names the legacy encoding of source files.
	Encoding string

	// Language is the target language; its extension names the output file.
	Language langdetect.Language

	// SourceExt keys bookmark sidecars.
	SourceExt string

	// SourceFormat selects text or Markdown line splitting.
	SourceFormat config.SourceFormat

	// Output overrides the derived output path when non-empty.
	Output string

	// Backups keeps the previous output as a sidecar before overwriting it.
	Backups bool

	// Document shapes the generated code.
	Document fakecode.Options
}

// OptionsFromConfig validates the conversion-related parts of cfg.
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	canon, ok := textenc.Canonical(cfg.Encoding)
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", textenc.ErrUnsupportedEncoding, cfg.Encoding)
	}

	lang, err := langdetect.Resolve(cfg.Language)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Encoding:     canon,
		Language:     lang,
		SourceExt:    cfg.SourceExt,
		SourceFormat: cfg.SourceFormat,
		Output:       cfg.Output,
		Backups:      cfg.Backups.Enabled,
		Document: fakecode.Options{
			WrapWidth:           cfg.WrapWidth,
			MethodPeriod:        cfg.MethodPeriod,
			Indent:              cfg.Indent,
			LegacyTrailingClose: cfg.LegacyTrailingClose,
		},
	}, nil
}
