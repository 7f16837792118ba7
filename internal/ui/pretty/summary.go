package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomoyu/pkg/convert"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats a conversion as a single line.
// Example: "Converted novel.txt -> novel.js (412 lines, 3 methods)".
func (s *Styles) FormatSummaryOneLine(result *convert.Result) string {
	if result == nil {
		return s.Warning.Render("Nothing converted") + "\n"
	}

	return fmt.Sprintf("%s %s -> %s %s\n",
		s.Success.Render("Converted"),
		s.FilePath.Render(result.Source),
		s.FilePath.Render(result.Output),
		s.Dim.Render(fmt.Sprintf("(%d %s, %d %s)",
			result.Lines, plural(result.Lines, "line", "lines"),
			result.Methods, plural(result.Methods, "method", "methods"))),
	)
}

// FormatSummary formats a conversion as a summary block.
func (s *Styles) FormatSummary(result *convert.Result) string {
	if result == nil {
		return s.FormatSummaryOneLine(nil)
	}

	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label, value string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", value))
	}

	row("Source", s.FilePath.Render(result.Source))
	row("Output", s.FilePath.Render(result.Output))
	if result.Backup != "" {
		row("Backup", s.FilePath.Render(result.Backup))
	}
	row("Lines", s.SummaryValue.Render(strconv.Itoa(result.Lines)))
	row("Methods", s.SummaryValue.Render(strconv.Itoa(result.Methods)))
	row("Bookmark", s.FormatLocation(result.Output, result.Bookmark))
	row("Detected", s.SummaryValue.Render(result.Detected))

	return builder.String()
}
