package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomoyu/internal/configloader"
	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

type configFlags struct {
	env bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging defaults, config files and
GOMOYU_* environment variables, along with the files it was read from.

Examples:
  gomoyu config          # Resolved settings as YAML
  gomoyu config --env    # Supported environment variables`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.env {
				return printEnvVars(cmd.OutOrStdout())
			}
			return runConfig(cmd)
		},
	}

	cmd.Flags().BoolVar(&flags.env, "env", false, "list supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command) error {
	ctx := commandContext(cmd)

	loaded, err := loadConfig(ctx, cmd, &config.Config{})
	if err != nil {
		return err
	}

	content, err := loaded.Config.ToYAML()
	if err != nil {
		return err
	}

	var builder strings.Builder
	if len(loaded.LoadedFrom) == 0 {
		builder.WriteString("# loaded from: defaults only\n")
	}
	for _, path := range loaded.LoadedFrom {
		builder.WriteString("# loaded from: " + path + "\n")
	}
	builder.WriteString("# encodings: " + strings.Join(textenc.Supported(), ", ") + "\n")
	builder.WriteString("# languages: " + strings.Join(langdetect.Supported(), ", ") + "\n")
	builder.Write(content)

	_, err = io.WriteString(cmd.OutOrStdout(), builder.String())
	return err
}

func printEnvVars(w io.Writer) error {
	vars := configloader.ListEnvVars()

	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	for _, v := range vars {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, v.Name, v.Description); err != nil {
			return err
		}
	}
	return nil
}
