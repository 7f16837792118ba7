package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/convert"
)

func newBookmarkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark <file> [line]",
		Short: "Show or set the reading position of a file",
		Long: `Show or set where reading resumes for a file.

The file may be the source text or its generated output; both share one
bookmark stored next to the source as <name>.txt.bookmark. Lines are
numbered from 1.

Examples:
  gomoyu bookmark novel.js        # Print the saved position
  gomoyu bookmark novel.js 120    # Resume at line 120 next time`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: runBookmark,
	}

	return cmd
}

func runBookmark(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)

	loaded, err := loadConfig(ctx, cmd, &config.Config{})
	if err != nil {
		return err
	}

	opts, err := convert.OptionsFromConfig(loaded.Config)
	if err != nil {
		return err
	}

	conv := convert.New(opts, nil)
	path := args[0]
	styles := outputStyles(cmd)

	if len(args) == 1 {
		line := conv.Bookmarks().Load(path)
		_, err := fmt.Fprintln(cmd.OutOrStdout(), styles.FormatLocation(path, line))
		return err
	}

	line, err := strconv.Atoi(args[1])
	if err != nil || line < 1 {
		return fmt.Errorf("%w: line must be a positive integer, got %q", ErrUsage, args[1])
	}

	if err := conv.Mark(ctx, path, line-1); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(),
		styles.Success.Render("Bookmarked")+" "+styles.FormatLocation(path, line-1))
	return err
}
