// Package source splits decoded text into the ordered lines fed to the
// fake-code synthesizer.
package source

import (
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomoyu/pkg/config"
)

//nolint:gochecknoglobals // Read-only lookup table.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

// Resolve turns SourceFormatAuto into a concrete format using the path's
// extension. Other formats are returned unchanged.
func Resolve(format config.SourceFormat, path string) config.SourceFormat {
	if format != config.SourceFormatAuto && format != "" {
		return format
	}
	if markdownExts[strings.ToLower(filepath.Ext(path))] {
		return config.SourceFormatMarkdown
	}
	return config.SourceFormatText
}

// Lines splits text according to format. Plain text is split on "\n" only;
// trimming is left to the synthesizer so blank lines keep their index.
func Lines(text string, format config.SourceFormat) []string {
	if format == config.SourceFormatMarkdown {
		return markdownLines([]byte(text))
	}
	return strings.Split(text, "\n")
}
