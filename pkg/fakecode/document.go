package fakecode

import (
	"strings"
	"unicode"
)

// Options tunes the shape of generated documents.
type Options struct {
	// WrapWidth is the maximum rune count of a comment line.
	WrapWidth int

	// MethodPeriod opens a new method at every source index divisible by it.
	MethodPeriod int

	// Indent is one indentation level.
	Indent string

	// LegacyTrailingClose emits the final return statement and brace even
	// when no method was ever opened, leaving a dangling return in the class body.
	LegacyTrailingClose bool
}

// DefaultOptions returns the stock document shape.
func DefaultOptions() Options {
	return Options{
		WrapWidth:    80,
		MethodPeriod: 15,
		Indent:       "  ",
	}
}

// Result is a generated document.
type Result struct {
	Text string

	// Lines is the number of newline-terminated lines in Text.
	Lines int

	// Methods is the number of method declarations emitted.
	Methods int

	// Bookmark is the requested bookmark clamped to a line of Text.
	Bookmark int
}

// Synthesizer generates fake code. It is not safe for concurrent use
// unless its Rand is.
type Synthesizer struct {
	rng  Rand
	opts Options
}

// New returns a Synthesizer drawing template choices from rng. Zero-valued
// option fields fall back to DefaultOptions.
func New(rng Rand, opts Options) *Synthesizer {
	defaults := DefaultOptions()
	if opts.WrapWidth <= 0 {
		opts.WrapWidth = defaults.WrapWidth
	}
	if opts.MethodPeriod <= 0 {
		opts.MethodPeriod = defaults.MethodPeriod
	}
	if opts.Indent == "" {
		opts.Indent = defaults.Indent
	}
	return &Synthesizer{rng: rng, opts: opts}
}

// Options returns the effective options.
func (s *Synthesizer) Options() Options {
	return s.opts
}

// Indentation depths of the generated class.
const (
	classDepth  = 1
	methodDepth = 2
)

// Document converts source lines into a fake class definition. Blank lines
// are skipped but still advance the index that decides method boundaries.
func (s *Synthesizer) Document(lines []string, bookmarkHint int) Result {
	doc := &writer{indent: s.opts.Indent}

	for _, header := range strings.Split(headerBlock, "\n") {
		doc.line(0, header)
	}
	doc.blank()
	doc.line(0, importInterfaces)
	doc.line(0, importUtils)
	doc.blank()

	doc.line(0, pick(s.rng, classOpenings))
	doc.line(classDepth, pick(s.rng, fieldDeclarations)+";")
	doc.blank()

	methods := 0
	for i, raw := range lines {
		line := trim(raw)
		if line == "" {
			continue
		}

		if i%s.opts.MethodPeriod == 0 {
			if methods > 0 {
				doc.closeMethod()
				doc.blank()
			}
			doc.line(classDepth, pick(s.rng, methodPrefixes)+methodName(line)+"() {")
			doc.line(methodDepth, resultInit)
			methods++
		}

		for _, chunk := range Wrap(line, s.opts.WrapWidth) {
			doc.line(methodDepth, "// "+chunk)
		}
		doc.line(methodDepth, s.Line(line))
	}

	if methods > 0 || s.opts.LegacyTrailingClose {
		doc.closeMethod()
	}
	doc.line(0, "}")

	return Result{
		Text:     doc.buf.String(),
		Lines:    doc.lines,
		Methods:  methods,
		Bookmark: clamp(bookmarkHint, 0, doc.lines-1),
	}
}

// methodName keeps the ASCII letters among the first two runes of line.
func methodName(line string) string {
	var name strings.Builder
	taken := 0
	for _, r := range line {
		if taken == 2 {
			break
		}
		taken++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			name.WriteRune(r)
		}
	}
	return name.String() + methodNameSuffix
}

func trim(line string) string {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

type writer struct {
	buf    strings.Builder
	indent string
	lines  int
}

func (w *writer) line(depth int, text string) {
	if text != "" {
		w.buf.WriteString(strings.Repeat(w.indent, depth))
		w.buf.WriteString(text)
	}
	w.buf.WriteByte('\n')
	w.lines++
}

func (w *writer) blank() {
	w.line(0, "")
}

func (w *writer) closeMethod() {
	w.line(methodDepth, returnResult)
	w.line(classDepth, "}")
}
