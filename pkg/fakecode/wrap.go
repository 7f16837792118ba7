package fakecode

// Wrap splits text into consecutive chunks of maxWidth runes; only the last
// chunk may be shorter. Empty text yields no chunks. A non-positive maxWidth
// returns the text as a single chunk.
func Wrap(text string, maxWidth int) []string {
	if text == "" {
		return nil
	}
	if maxWidth <= 0 {
		return []string{text}
	}

	var chunks []string
	start, count := 0, 0
	for i := range text {
		if count == maxWidth {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	return append(chunks, text[start:])
}
