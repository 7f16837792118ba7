package convert_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"github.com/yaklabco/gomoyu/pkg/bookmark"
	"github.com/yaklabco/gomoyu/pkg/config"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/fakecode"
	"github.com/yaklabco/gomoyu/pkg/fsutil"
	"github.com/yaklabco/gomoyu/pkg/langdetect"
	"github.com/yaklabco/gomoyu/pkg/textenc"
)

// fakeHost records Reveal calls and returns a canned pick.
type fakeHost struct {
	pick      string
	pickErr   error
	revealErr error

	revealed     bool
	revealedPath string
	revealedLine int
}

func (h *fakeHost) PickSource(context.Context) (string, error) {
	return h.pick, h.pickErr
}

func (h *fakeHost) Reveal(_ context.Context, path string, line int) error {
	h.revealed = true
	h.revealedPath = path
	h.revealedLine = line
	return h.revealErr
}

func newConverter(t *testing.T, mutate func(*config.Config)) *convert.Converter {
	t.Helper()

	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}

	opts, err := convert.OptionsFromConfig(cfg)
	require.NoError(t, err)

	rng, _ := fakecode.NewRand(7, true)
	return convert.New(opts, rng)
}

func writeGBK(t *testing.T, path, text string) {
	t.Helper()

	data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(text))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	opts, err := convert.OptionsFromConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "gbk", opts.Encoding)
	assert.Equal(t, ".js", opts.Language.Extension)
	assert.Equal(t, 80, opts.Document.WrapWidth)
	assert.Equal(t, 15, opts.Document.MethodPeriod)

	cfg := config.NewConfig()
	cfg.Encoding = "CP936"
	cfg.Language = "typescript"
	opts, err = convert.OptionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "gbk", opts.Encoding)
	assert.Equal(t, ".ts", opts.Language.Extension)

	cfg = config.NewConfig()
	cfg.Encoding = "ebcdic"
	_, err = convert.OptionsFromConfig(cfg)
	require.ErrorIs(t, err, textenc.ErrUnsupportedEncoding)

	cfg = config.NewConfig()
	cfg.Language = "cobol"
	_, err = convert.OptionsFromConfig(cfg)
	require.ErrorIs(t, err, langdetect.ErrUnknownLanguage)
}

func TestConverter_OutputPathFor(t *testing.T) {
	t.Parallel()

	conv := newConverter(t, nil)
	assert.Equal(t, "dir/novel.js", conv.OutputPathFor("dir/novel.txt"))
	assert.Equal(t, "novel.js", conv.OutputPathFor("novel"))
	assert.Equal(t, "a.b/novel.js", conv.OutputPathFor("a.b/novel.md"))

	ts := newConverter(t, func(c *config.Config) { c.Language = "typescript" })
	assert.Equal(t, "novel.ts", ts.OutputPathFor("novel.txt"))

	explicit := newConverter(t, func(c *config.Config) { c.Output = "out/custom.js" })
	assert.Equal(t, "out/custom.js", explicit.OutputPathFor("novel.txt"))
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章 开始\n\n他走进了房间。\nplain ascii\n")

	conv := newConverter(t, nil)
	result, err := conv.Convert(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, src, result.Source)
	assert.Equal(t, filepath.Join(dir, "novel.js"), result.Output)
	assert.Equal(t, 1, result.Methods)
	assert.Equal(t, "javascript", result.Detected)
	assert.Empty(t, result.Backup)
	assert.Zero(t, result.Bookmark)

	data, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "// 第一章 开始")
	assert.Contains(t, text, "// 他走进了房间。")
	assert.Contains(t, text, "// plain ascii")
	assert.Contains(t, text, fakecode.NoOpStatement)
	assert.Equal(t, result.Lines, strings.Count(text, "\n"))
	assert.Equal(t, strings.Count(text, "{"), strings.Count(text, "}"))
}

func TestConverter_ConvertUsesBookmark(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章\n第二章\n第三章\n")

	conv := newConverter(t, nil)
	ctx := context.Background()

	require.NoError(t, conv.Mark(ctx, filepath.Join(dir, "novel.js"), 5))

	result, err := conv.Convert(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Bookmark)

	require.NoError(t, conv.Mark(ctx, src, 100000))
	result, err = conv.Convert(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, result.Lines-1, result.Bookmark, "clamped to the last line")
}

func TestConverter_ConvertMarkdown(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "notes.md")
	require.NoError(t, os.WriteFile(src, []byte("# 标题\n\n正文 **加粗**\n"), 0o600))

	conv := newConverter(t, func(c *config.Config) { c.Encoding = "utf-8" })
	result, err := conv.Convert(context.Background(), src)
	require.NoError(t, err)

	data, err := os.ReadFile(result.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// 标题")
	assert.Contains(t, string(data), "// 正文 加粗")
	assert.NotContains(t, string(data), "**")
}

func TestConverter_ConvertBackups(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章\n")

	conv := newConverter(t, func(c *config.Config) { c.Backups.Enabled = true })
	ctx := context.Background()

	first, err := conv.Convert(ctx, src)
	require.NoError(t, err)
	assert.Empty(t, first.Backup, "nothing to back up on first run")

	previous, err := os.ReadFile(first.Output)
	require.NoError(t, err)

	second, err := conv.Convert(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, fsutil.BackupPath(first.Output), second.Backup)

	backup, err := os.ReadFile(second.Backup)
	require.NoError(t, err)
	assert.Equal(t, previous, backup)
}

func TestConverter_ConvertErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	conv := newConverter(t, nil)

	_, err := conv.Convert(ctx, filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	var ioErr *convert.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.True(t, convert.IsIOError(err))
	assert.NoFileExists(t, filepath.Join(dir, "missing.js"), "nothing written on read failure")

	src := filepath.Join(dir, "code.js")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))
	_, err = conv.Convert(ctx, src)
	require.ErrorIs(t, err, convert.ErrOutputIsSource)

	src = filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章\n")
	blocked := newConverter(t, func(c *config.Config) {
		c.Output = filepath.Join(dir, "no-such-dir", "out.js")
	})
	_, err = blocked.Convert(ctx, src)
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = conv.Convert(canceled, src)
	require.ErrorIs(t, err, context.Canceled)
}

func TestIOError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := &convert.IOError{Op: "write", Path: "a.js", Err: cause}
	assert.Equal(t, "write a.js: boom", err.Error())
	require.ErrorIs(t, err, cause)
	assert.False(t, convert.IsIOError(cause))
}

func TestConverter_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章\n第二章\n")

	conv := newConverter(t, nil)
	ctx := context.Background()
	require.NoError(t, conv.Mark(ctx, src, 3))

	host := &fakeHost{pick: src}
	result, err := conv.Run(ctx, host)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, host.revealed)
	assert.Equal(t, result.Output, host.revealedPath)
	assert.Equal(t, 3, host.revealedLine)
}

func TestConverter_RunCancelled(t *testing.T) {
	t.Parallel()

	host := &fakeHost{}
	result, err := newConverter(t, nil).Run(context.Background(), host)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, host.revealed)
}

func TestConverter_RunErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	conv := newConverter(t, nil)

	pickErr := errors.New("dialog failed")
	_, err := conv.Run(ctx, &fakeHost{pickErr: pickErr})
	require.ErrorIs(t, err, pickErr)

	host := &fakeHost{pick: filepath.Join(dir, "missing.txt")}
	_, err = conv.Run(ctx, host)
	assert.True(t, convert.IsIOError(err))
	assert.False(t, host.revealed)

	src := filepath.Join(dir, "novel.txt")
	writeGBK(t, src, "第一章\n")
	revealErr := errors.New("editor gone")
	result, err := conv.Run(ctx, &fakeHost{pick: src, revealErr: revealErr})
	require.ErrorIs(t, err, revealErr)
	require.NotNil(t, result, "output is still written")
	assert.FileExists(t, result.Output)
}

func TestConverter_Mark(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	conv := newConverter(t, nil)
	ctx := context.Background()

	require.NoError(t, conv.Mark(ctx, filepath.Join(dir, "novel.js"), 42))
	assert.Equal(t, 42, conv.Bookmarks().Load(filepath.Join(dir, "novel.txt")))

	err := conv.Mark(ctx, filepath.Join(dir, "novel.js"), -1)
	require.ErrorIs(t, err, bookmark.ErrNegativeLine)
	assert.False(t, convert.IsIOError(err))

	err = conv.Mark(ctx, filepath.Join(dir, "missing", "novel.js"), 1)
	var ioErr *convert.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "bookmark", ioErr.Op)
	assert.Equal(t, filepath.Join(dir, "missing", "novel.txt.bookmark"), ioErr.Path)
}
