// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Location components
	FilePath lipgloss.Style
	Location lipgloss.Style

	// Preview components
	Frame     lipgloss.Style
	Gutter    lipgloss.Style
	Marker    lipgloss.Style
	Current   lipgloss.Style
	Comment   lipgloss.Style
	Code      lipgloss.Style
	Statement lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	// framed reports whether Frame draws a border. Plain lipgloss rendering
	// pads multi-line text to its widest line, so unframed previews skip it.
	framed bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		Gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Current:   lipgloss.NewStyle().Bold(true),
		Comment:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Code:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Statement: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Warning:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		framed: true,
	}
}

// newNoColorStyles creates styles with no formatting at all, borders included.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:     plain,
		Location:     plain,
		Frame:        plain,
		Gutter:       plain,
		Marker:       plain,
		Current:      plain,
		Comment:      plain,
		Code:         plain,
		Statement:    plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Warning:      plain,
		Failure:      plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
