package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomoyu/internal/ui/pretty"
)

// helpTemplate renders command help. Its funcs are bound per call so the
// --color flag is honored after parsing.
const helpTemplate = `{{with (or .Long .Short)}}{{ trim . }}

{{end}}{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}
{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ name (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}
{{- if .HasAvailableSubCommands}}

{{ dim (print "Run '" .CommandPath " [command] --help' for details on a command.") }}
{{- end}}
`

// applyHelp installs styled help and usage output on cmd and its subcommands.
func applyHelp(cmd *cobra.Command) {
	tmpl := template.Must(template.New("help").Funcs(helpFuncs(pretty.NewStyles(false))).Parse(helpTemplate))

	render := func(command *cobra.Command, out io.Writer) error {
		styles := helpStyles(command, out)
		if err := template.Must(tmpl.Clone()).Funcs(helpFuncs(styles)).Execute(out, command); err != nil {
			return fmt.Errorf("render help: %w", err)
		}
		return nil
	}

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command, command.OutOrStdout()); err != nil {
			command.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(command, command.OutOrStderr())
	})
}

// helpStyles resolves --color for out, falling back to auto detection.
func helpStyles(cmd *cobra.Command, out io.Writer) *pretty.Styles {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		mode = "auto"
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, out))
}

func helpFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading": styles.SummaryTitle.Render,
		"command": styles.Location.Render,
		"name":    styles.Success.Render,
		"dim":     styles.Dim.Render,
		"rpad":    rpad,
		"trim":    trimTrailingWhitespace,
		"flags": func(usages string) string {
			return styleFlagUsages(styles, usages)
		},
	}
}

// styleFlagUsages colors the flag column of pflag's usage listing. A line
// whose description cannot be found is kept as is.
func styleFlagUsages(styles *pretty.Styles, usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		body := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(body)]

		gap := strings.Index(body, "  ")
		if body == "" || gap < 0 {
			continue
		}
		spec, desc := body[:gap], strings.TrimLeft(body[gap:], " ")

		tokens := strings.Fields(spec)
		for j, token := range tokens {
			if name, found := strings.CutSuffix(token, ","); strings.HasPrefix(token, "-") {
				tokens[j] = styles.Location.Render(name)
				if found {
					tokens[j] += ","
				}
			} else {
				tokens[j] = styles.Dim.Render(token)
			}
		}

		lines[i] = indent + strings.Join(tokens, " ") + "   " + desc
	}
	return strings.Join(lines, "\n")
}

func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
