package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/yaklabco/gomoyu/internal/ui/pretty"
	"github.com/yaklabco/gomoyu/pkg/convert"
	"github.com/yaklabco/gomoyu/pkg/fsutil"
)

// ErrNoSource is returned when no source file was named and none can be prompted for.
var ErrNoSource = errors.New("no source file given and stdin is not a terminal")

// terminalHost picks sources from the command line or a prompt and reveals
// output by printing its location and an optional preview.
type terminalHost struct {
	in          io.Reader
	out         io.Writer
	styles      *pretty.Styles
	arg         string
	interactive bool
	preview     int

	// quiet suppresses Reveal output when stdout carries machine-readable results.
	quiet bool
}

var _ convert.Host = (*terminalHost)(nil)

// PickSource returns the path argument, or prompts for one on an
// interactive terminal. An empty answer cancels.
func (h *terminalHost) PickSource(ctx context.Context) (string, error) {
	if h.arg != "" {
		return h.arg, nil
	}
	if !h.interactive {
		return "", fmt.Errorf("%w: %w", ErrUsage, ErrNoSource)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(h.out, h.styles.Bold.Render("Source file")+": "); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	answer, err := bufio.NewReader(h.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read response: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// Reveal prints "path:line" and, when enabled, a window of the document around line.
func (h *terminalHost) Reveal(ctx context.Context, path string, line int) error {
	if h.quiet {
		return nil
	}
	if _, err := fmt.Fprintln(h.out, h.styles.FormatLocation(path, line)); err != nil {
		return fmt.Errorf("write location: %w", err)
	}
	if h.preview <= 0 {
		return nil
	}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return &convert.IOError{Op: "read", Path: path, Err: err}
	}

	if _, err := io.WriteString(h.out, h.styles.FormatPreview(string(content), line, h.preview)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

// isInteractive returns true if r is a terminal.
func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
