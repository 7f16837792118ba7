package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/yaklabco/gomoyu/internal/cli"
	"github.com/yaklabco/gomoyu/internal/configloader"
	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/fsutil"
)

var testInfo = cli.BuildInfo{Version: "test", Commit: "test", Date: "test"} //nolint:gochecknoglobals // Test fixture.

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

// fixture writes a GBK novel and an empty config file into a temp dir.
func fixture(t *testing.T) (dir, novel, cfgFile string) {
	t.Helper()

	dir = t.TempDir()
	novel = filepath.Join(dir, "novel.txt")
	writeNovel(t, novel, "第一章 开始\n他走进了房间。\n\n窗外下着雨。\n")

	cfgFile = filepath.Join(dir, "gomoyu.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("# test\n"), 0o600))
	return dir, novel, cfgFile
}

func writeNovel(t *testing.T, path, text string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)
	assert.Equal(t, "gomoyu", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"convert", "bookmark", "config", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if assert.NoError(t, err, name) {
			assert.Equal(t, name, sub.Name())
		}
	}

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestConvertCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	convertCmd, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)

	for _, name := range []string{
		"encoding", "language", "output", "seed", "source-format",
		"legacy-trailing-close", "backup", "preview", "format", "ignore", "jobs",
	} {
		assert.NotNil(t, convertCmd.Flags().Lookup(name), name)
	}
	for _, short := range []string{"o", "f", "j"} {
		assert.NotNil(t, convertCmd.Flags().ShorthandLookup(short), short)
	}
}

func TestConvertCommand(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)
	output := filepath.Join(dir, "novel.js")

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--color", "never", "--seed", "3", novel)
	require.NoError(t, err)

	assert.Contains(t, stdout, output+":1\n")
	assert.Contains(t, stdout, "Converted "+novel+" -> "+output)

	first, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(first), "// 第一章 开始")
	assert.Contains(t, string(first), "// 窗外下着雨。")

	_, err = execute(t, "", "convert", "--config", cfgFile, "--seed", "3", novel)
	require.NoError(t, err)
	second, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "same seed, same output")
}

func TestConvertCommand_Options(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)
	custom := filepath.Join(dir, "out", "reader.ts")
	require.NoError(t, os.Mkdir(filepath.Dir(custom), 0o755))

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--color", "never",
		"--language", "typescript", "-o", custom, "--preview", "2", "--format", "summary", novel)
	require.NoError(t, err)

	assert.FileExists(t, custom)
	assert.NoFileExists(t, filepath.Join(dir, "novel.ts"))
	assert.Contains(t, stdout, "> 1 │ /**")
	assert.Contains(t, stdout, "Summary")
	assert.Regexp(t, `Output:\s+`+regexp.QuoteMeta(custom), stdout)
}

func TestConvertCommand_ResumesAtBookmark(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)
	output := filepath.Join(dir, "novel.js")

	_, err := execute(t, "", "bookmark", "--config", cfgFile, output, "12")
	require.NoError(t, err)

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--color", "never", novel)
	require.NoError(t, err)
	assert.Contains(t, stdout, output+":12\n")
}

func TestConvertCommand_ConfigFile(t *testing.T) {
	t.Parallel()

	dir, novel, _ := fixture(t)
	cfgFile := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("language: typescript\nindent: \"\\t\"\n"), 0o600))

	_, err := execute(t, "", "convert", "--config", cfgFile, novel)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "novel.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n\t\t// 第一章 开始\n")
}

func TestConvertCommand_Errors(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)
	writeNovel(t, filepath.Join(dir, "sequel.txt"), "第二章\n")
	badCfg := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(badCfg, []byte("wrap_width: -5\n"), 0o600))

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"missing source", []string{"convert", "--config", cfgFile, filepath.Join(dir, "nope.txt")}, cli.ExitIOError},
		{"unsupported encoding", []string{"convert", "--config", cfgFile, "--encoding", "ebcdic", novel}, cli.ExitConfigError},
		{"invalid config file", []string{"convert", "--config", badCfg, novel}, cli.ExitConfigError},
		{"bad ignore pattern", []string{"convert", "--config", cfgFile, "--ignore", "[a-", dir}, cli.ExitInvalidUsage},
		{"unknown format", []string{"convert", "--config", cfgFile, "--format", "sarif", novel}, cli.ExitInvalidUsage},
		{"output shared by a directory", []string{"convert", "--config", cfgFile, "-o", filepath.Join(dir, "all.js"), dir}, cli.ExitInvalidUsage},
		{"unknown flag", []string{"convert", "--flavor", "gfm", novel}, cli.ExitInvalidUsage},
		{"no source without terminal", []string{"convert", "--config", cfgFile}, cli.ExitInvalidUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFromError(err), err.Error())
		})
	}
}

func TestConvertCommand_Directory(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skip("converts a directory tree")
	}

	dir, _, cfgFile := fixture(t)
	writeNovel(t, filepath.Join(dir, "shelf", "sequel.txt"), "第二章\n雨停了。\n")
	writeNovel(t, filepath.Join(dir, "drafts", "scrap.txt"), "草稿\n")

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--color", "never",
		"--ignore", "drafts/**", "--ignore", "**/drafts", "-j", "2", dir)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "novel.js"))
	assert.FileExists(t, filepath.Join(dir, "shelf", "sequel.js"))
	assert.NoFileExists(t, filepath.Join(dir, "drafts", "scrap.js"))
	assert.Contains(t, stdout, "2 converted")
	assert.NotContains(t, stdout, ":1\n", "batch runs do not reveal")
}

func TestConvertCommand_DirectoryFailure(t *testing.T) {
	t.Parallel()

	dir, _, cfgFile := fixture(t)
	writeNovel(t, filepath.Join(dir, "sequel.txt"), "第二章\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sequel.js"), 0o755))

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--color", "never", dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
	assert.Contains(t, stdout, "1 converted, 1 failed")
	assert.FileExists(t, filepath.Join(dir, "novel.js"))
}

func TestConvertCommand_JSON(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)

	stdout, err := execute(t, "", "convert", "--config", cfgFile, "--seed", "5", "--preview", "3", "--format", "json", novel)
	require.NoError(t, err)

	var decoded struct {
		Files []struct {
			Source string `json:"source"`
			Output string `json:"output"`
			Seed   int64  `json:"seed"`
			Line   int    `json:"line"`
		} `json:"files"`
		Summary struct {
			FilesConverted int `json:"filesConverted"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded), stdout)

	require.Len(t, decoded.Files, 1)
	assert.Equal(t, novel, decoded.Files[0].Source)
	assert.Equal(t, filepath.Join(dir, "novel.js"), decoded.Files[0].Output)
	assert.Equal(t, int64(5), decoded.Files[0].Seed)
	assert.Equal(t, 1, decoded.Files[0].Line)
	assert.Equal(t, 1, decoded.Summary.FilesConverted)
}

func TestBookmarkCommand(t *testing.T) {
	t.Parallel()

	dir, novel, cfgFile := fixture(t)
	output := filepath.Join(dir, "novel.js")

	stdout, err := execute(t, "", "bookmark", "--config", cfgFile, "--color", "never", novel)
	require.NoError(t, err)
	assert.Equal(t, novel+":1\n", stdout, "no sidecar reads as the first line")

	stdout, err = execute(t, "", "bookmark", "--config", cfgFile, "--color", "never", output, "120")
	require.NoError(t, err)
	assert.Equal(t, "Bookmarked "+output+":120\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "novel.txt.bookmark"))
	require.NoError(t, err)
	assert.Equal(t, "119", string(data), "stored zero-based")

	stdout, err = execute(t, "", "bookmark", "--config", cfgFile, "--color", "never", novel)
	require.NoError(t, err)
	assert.Equal(t, novel+":120\n", stdout)
}

func TestBookmarkCommand_Errors(t *testing.T) {
	t.Parallel()

	dir, _, cfgFile := fixture(t)

	for _, line := range []string{"0", "-4", "ten"} {
		_, err := execute(t, "", "bookmark", "--config", cfgFile, filepath.Join(dir, "novel.js"), line)
		require.Error(t, err, line)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err), line)
	}

	_, err := execute(t, "", "bookmark", "--config", cfgFile)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))

	_, err = execute(t, "", "bookmark", "--config", cfgFile, filepath.Join(dir, "missing", "novel.js"), "3")
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, ".gomoyu.yml")

	_, err := execute(t, "", "init", "-o", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultEncoding, cfg.Encoding)

	_, err = execute(t, "", "init", "-o", target)
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))

	_, err = execute(t, "", "init", "-o", target, "--force", "--full")
	require.NoError(t, err)
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "method_period: 15")
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("encoding: big5\n"), 0o600))

	stdout, err := execute(t, "", "config", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "# loaded from: "+cfgFile)
	assert.Contains(t, stdout, "encoding: big5")
	assert.Contains(t, stdout, "wrap_width: 80")

	stdout, err = execute(t, "", "config", "--env")
	require.NoError(t, err)
	assert.Contains(t, stdout, "GOMOYU_ENCODING")
	assert.Contains(t, stdout, "GOMOYU_BACKUPS_ENABLED")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2024-01-01"})
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "1.2.3")
	assert.Contains(t, out.String(), "abc123")
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"usage", fmt.Errorf("%w: bad", cli.ErrUsage), cli.ExitInvalidUsage},
		{"config", fmt.Errorf("wrap: %w", configloader.ErrInvalidConfig), cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "wrap_width"}, cli.ExitConfigError},
		{"io", &convert.IOError{Op: "read", Path: "a", Err: fsutil.ErrNotFound}, cli.ExitIOError},
		{"joined io", errors.Join(errors.New("context"), &convert.IOError{Op: "write"}), cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitFailure},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err), tt.name)
	}
}

func TestHelp(t *testing.T) {
	t.Parallel()

	stdout, err := execute(t, "", "convert", "--help", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Usage:\n  gomoyu convert [path...] [flags]\n")
	assert.Contains(t, stdout, "\nFlags:\n")
	assert.Contains(t, stdout, "  -f, --format string   result format")
	assert.Contains(t, stdout, "\nGlobal Flags:\n")
	assert.NotContains(t, stdout, "\x1b[")

	stdout, err = execute(t, "", "--help", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\nCommands:\n")
	assert.Contains(t, stdout, "Run 'gomoyu [command] --help' for details on a command.")
}
