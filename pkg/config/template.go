package config

import (
	"bytes"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every option uncommented with its default value.
	Full bool
}

// GenerateTemplate creates a commented .gomoyu.yml template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# gomoyu configuration
# See: https://github.com/yaklabco/gomoyu

# Encoding of source text files: gbk, gb18030, big5, shift_jis, euc-kr, utf-8, ...
encoding: gbk

# Target language of generated files: javascript or typescript
# language: javascript

# How source files are split into lines: auto, text, or markdown
# source_format: auto

# Keep a sidecar backup of an output file before overwriting it
# backups:
#   enabled: false
`)

	return buf.Bytes()
}

func generateFullTemplate() ([]byte, error) {
	defaults, err := NewConfig().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("render defaults: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(`# gomoyu configuration - Full Template
# See: https://github.com/yaklabco/gomoyu
#
# encoding               legacy encoding of source files
# language               javascript or typescript
# source_ext             extension of source files; bookmarks are keyed on it
# source_format          auto, text, or markdown
# wrap_width             maximum characters per comment line
# method_period          a new method opens every N source lines
# indent                 one level of indentation
# legacy_trailing_close  always emit the final "return result;" even with no method
# backups.enabled        keep <output>.gomoyu.bak before overwriting

`)
	buf.Write(defaults)

	return buf.Bytes(), nil
}
