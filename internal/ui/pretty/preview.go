package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatLocation renders a zero-based line as an editor-style "path:line".
func (s *Styles) FormatLocation(path string, line int) string {
	return s.FilePath.Render(path) + s.Location.Render(":"+strconv.Itoa(line+1))
}

// FormatPreview renders the lines of text within radius of the zero-based
// line current, with a gutter of one-based line numbers and a marker on
// current. It returns "" when text is empty or radius is negative.
func (s *Styles) FormatPreview(text string, current, radius int) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if text == "" || radius < 0 {
		return ""
	}

	current = max(0, min(current, len(lines)-1))
	start := max(0, current-radius)
	end := min(len(lines), current+radius+1)
	width := len(strconv.Itoa(end))

	var builder strings.Builder
	for idx := start; idx < end; idx++ {
		marker := "  "
		content := s.styleLine(lines[idx])
		if idx == current {
			marker = s.Marker.Render("> ")
			content = s.Current.Render(content)
		}

		builder.WriteString(marker)
		builder.WriteString(s.Gutter.Render(fmt.Sprintf("%*d │", width, idx+1)))
		if lines[idx] != "" {
			builder.WriteString(" " + content)
		}
		if idx < end-1 {
			builder.WriteString("\n")
		}
	}

	if !s.framed {
		return builder.String() + "\n"
	}
	return s.Frame.Render(builder.String()) + "\n"
}

// styleLine colors a generated line by what it holds.
func (s *Styles) styleLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "/*"), strings.HasPrefix(trimmed, "*"):
		return s.Comment.Render(line)
	case strings.HasSuffix(trimmed, "{"), trimmed == "}", strings.HasPrefix(trimmed, "import "):
		return s.Code.Render(line)
	default:
		return s.Statement.Render(line)
	}
}
