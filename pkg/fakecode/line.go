package fakecode

// Ideograph range recognized when deriving identifiers.
const (
	ideographFirst = '\u4E00'
	ideographLast  = '\u9FA5'
)

// Ideographs returns the runes of line inside the CJK unified ideograph range.
func Ideographs(line string) []rune {
	var out []rune
	for _, r := range line {
		if r >= ideographFirst && r <= ideographLast {
			out = append(out, r)
		}
	}
	return out
}

// Line renders a pseudo-statement for one trimmed source line. The first
// ideograph becomes the primary identifier and the second, when present, the
// secondary one. A line without ideographs yields NoOpStatement and consumes
// no randomness.
func (s *Synthesizer) Line(line string) string {
	words := Ideographs(line)
	if len(words) == 0 {
		return NoOpStatement
	}

	primary := string(words[0])
	secondary := ""
	if len(words) > 1 {
		secondary = string(words[1])
	}

	return pick(s.rng, statementPatterns).render(primary, secondary)
}
