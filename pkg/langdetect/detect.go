// Package langdetect maps gomoyu's target languages onto linguist data from
// go-enry, and classifies generated files the same way GitHub would.
package langdetect

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// ErrUnknownLanguage is returned for a target language gomoyu cannot emit.
var ErrUnknownLanguage = errors.New("unknown target language")

// Language is a target language for generated files.
type Language struct {
	// Name is the configuration key, e.g. "javascript".
	Name string

	// Linguist is the go-enry language name, e.g. "JavaScript".
	Linguist string

	// Extension is the primary file extension including the dot.
	Extension string
}

// Target language keys.
const (
	JavaScript = "javascript"
	TypeScript = "typescript"
	langText   = "text"
)

//nolint:gochecknoglobals // Read-only lookup table.
var targets = map[string]Language{
	JavaScript: {Name: JavaScript, Linguist: "JavaScript", Extension: ".js"},
	TypeScript: {Name: TypeScript, Linguist: "TypeScript", Extension: ".ts"},
}

// Resolve returns the target language for name (case-insensitive). The
// extension comes from go-enry's linguist data when available.
func Resolve(name string) (Language, error) {
	lang, ok := targets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Language{}, fmt.Errorf("%w %q; must be one of: %s",
			ErrUnknownLanguage, name, strings.Join(Supported(), ", "))
	}

	if exts := enry.GetLanguageExtensions(lang.Linguist); len(exts) > 0 {
		lang.Extension = exts[0]
	}
	return lang, nil
}

// Supported returns the sorted target language keys.
func Supported() []string {
	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Detect classifies content stored under filename and returns a lower-case
// language name, or "text" when nothing matches.
func Detect(filename string, content []byte) string {
	if len(content) == 0 {
		return langText
	}

	if filepath.Ext(filename) != "" {
		if lang := enry.GetLanguage(filename, content); lang != "" {
			return strings.ToLower(lang)
		}
	}

	if looksLikeScript(string(content)) {
		return JavaScript
	}
	return langText
}

// looksLikeScript catches extension-less files that enry cannot place.
func looksLikeScript(content string) bool {
	return strings.Contains(content, "class ") &&
		(strings.Contains(content, "await ") || strings.Contains(content, "const "))
}
