package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomoyu/internal/logging"
	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/fakecode"
	"github.com/yaklabco/gomoyu/pkg/reporter"
	"github.com/yaklabco/gomoyu/pkg/runner"
)

type convertFlags struct {
	encoding     string
	language     string
	output       string
	sourceFormat string
	seed         int64
	legacyClose  bool
	backup       bool
	preview      int
	format       string
	ignore       []string
	jobs         int
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [path...]",
		Short: "Convert text files into fake source code",
		Long:  convertLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	addConvertFlags(cmd, flags)

	return cmd
}

const convertLongDescription = `Convert legacy-encoded text files into fake code files next to them.

The output keeps the source name with the target language's extension
(novel.txt becomes novel.js). It is positioned at the line saved with
'gomoyu bookmark'. Without a path argument, gomoyu prompts for one when
stdin is a terminal; an empty answer cancels.

Directories and multiple paths convert every file with the source
extension beneath them. Hidden files and directories are skipped.

Examples:
  gomoyu convert novel.txt                  # GBK text to novel.js
  gomoyu convert --encoding big5 novel.txt  # Traditional Chinese source
  gomoyu convert --language typescript book.md
  gomoyu convert --seed 42 --preview 5 novel.txt
  gomoyu convert --ignore 'drafts/**' library/
  gomoyu convert --format json novel.txt    # machine-readable result`

func addConvertFlags(cmd *cobra.Command, flags *convertFlags) {
	cmd.Flags().StringVar(&flags.encoding, "encoding", config.DefaultEncoding, "source encoding, e.g. gbk, gb18030, big5, shift_jis, utf-8")
	cmd.Flags().StringVar(&flags.language, "language", config.DefaultLanguage, "target language: javascript, typescript")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path (default: source path with the language extension)")
	cmd.Flags().StringVar(&flags.sourceFormat, "source-format", string(config.SourceFormatAuto), "source format: auto, text, markdown")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "seed template selection for reproducible output")
	cmd.Flags().BoolVar(&flags.legacyClose, "legacy-trailing-close", false, "always emit the final method close, even for empty sources")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep the previous output as a sidecar backup")
	cmd.Flags().IntVar(&flags.preview, "preview", 0, "print N lines of output around the bookmark")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(reporter.FormatText), "result format: text, summary, json")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip when converting directories")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "files converted concurrently (0 = number of CPUs)")
}

// cliConfig collects only the flags the user set, so unset flags do not
// override configuration files.
func (f *convertFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{Output: f.output, Preview: f.preview}
	changed := cmd.Flags().Changed

	if changed("encoding") {
		cfg.Encoding = f.encoding
	}
	if changed("language") {
		cfg.Language = f.language
	}
	if changed("source-format") {
		cfg.SourceFormat = config.SourceFormat(f.sourceFormat)
	}
	if changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	cfg.LegacyTrailingClose = f.legacyClose
	cfg.Backups.Enabled = f.backup

	return cfg
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	loaded, err := loadConfig(ctx, cmd, flags.cliConfig(cmd))
	if err != nil {
		return err
	}
	cfg := loaded.Config

	opts, err := convert.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}

	var seed int64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	rng, seed := fakecode.NewRand(seed, cfg.Seed != nil)
	logger.Debug("template selection seeded", logging.FieldSeed, seed)

	if isBatch(args) {
		return runBatch(ctx, cmd, args, flags, opts, seed, format)
	}

	host := &terminalHost{
		in:          cmd.InOrStdin(),
		out:         cmd.OutOrStdout(),
		styles:      outputStyles(cmd),
		interactive: isInteractive(cmd.InOrStdin()),
		preview:     cfg.Preview,
		quiet:       format == reporter.FormatJSON,
	}
	if len(args) == 1 {
		host.arg = args[0]
	}

	result, err := convert.New(opts, rng).Run(ctx, host)
	if err != nil {
		return err
	}
	if result == nil {
		logger.Info("conversion cancelled")
		return nil
	}

	return report(ctx, cmd, format, runner.NewResult(runner.FileOutcome{
		Path:   result.Source,
		Seed:   seed,
		Result: result,
	}))
}

// runBatch converts every source beneath args.
func runBatch(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	flags *convertFlags,
	opts convert.Options,
	seed int64,
	format reporter.Format,
) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	extensions := []string{opts.SourceExt}
	if opts.SourceFormat == config.SourceFormatMarkdown {
		extensions = append(extensions, ".md", ".markdown")
	}

	result, err := runner.New(opts, seed).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   extensions,
		ExcludeGlobs: flags.ignore,
		Jobs:         flags.jobs,
	})
	if errors.Is(err, runner.ErrSharedOutput) || errors.Is(err, runner.ErrInvalidPattern) {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err != nil {
		return err
	}

	if err := report(ctx, cmd, format, result); err != nil {
		return err
	}
	return result.Err()
}

func report(ctx context.Context, cmd *cobra.Command, format reporter.Format, result *runner.Result) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}
	return nil
}

// isBatch reports whether args name more than one path or a directory.
func isBatch(args []string) bool {
	if len(args) > 1 {
		return true
	}
	if len(args) == 0 {
		return false
	}
	info, err := os.Stat(args[0])
	return err == nil && info.IsDir()
}
