// Package editor launches the user's editor as the presentation surface.
//
// Commands come from config as shell templates ("code --wait {files}") and
// run through "sh -c" after placeholder substitution, so users keep their
// flags, wrappers, and shell functions. Two operations exist: a non-blocking
// window open and a blocking review view that returns only when the user
// closes it.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/fieldline/gws/internal/config"
	"github.com/fieldline/gws/internal/log"
)

// Editor runs configured editor commands.
type Editor struct {
	open   string
	review string
}

// New creates an Editor from the config templates.
func New(cfg config.EditorConfig) *Editor {
	return &Editor{open: cfg.Open, review: cfg.Review}
}

// Check verifies both configured editor commands resolve in PATH, so a
// broken review template surfaces before a walk starts instead of on its
// first commit.
func (e *Editor) Check() error {
	for _, tmpl := range []struct{ kind, cmd string }{
		{"open", e.open},
		{"review", e.review},
	} {
		name := commandName(tmpl.cmd)
		if name == "" {
			return fmt.Errorf("editor %s command is empty", tmpl.kind)
		}
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("editor %q not found in PATH", name)
		}
	}
	return nil
}

// OpenWindow opens a path in a new editor window without waiting for it.
// The editor process is released to run on its own; only launch failures
// are reported.
func (e *Editor) OpenWindow(ctx context.Context, path string) error {
	shellCmd := substitute(e.open, path, nil)
	log.FromContext(ctx).Debug("opening window", "cmd", shellCmd)

	c := exec.Command("sh", "-c", shellCmd)
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Start(); err != nil {
		return fmt.Errorf("failed to launch editor: %w", err)
	}
	// Reap the child so it doesn't linger as a zombie.
	go func() { _ = c.Wait() }()
	return nil
}

// OpenWait opens files in a blocking review view and returns when the user
// closes it. The editor gets the terminal (stdin/stdout/stderr), so the
// configured command must not return early ("code --wait", plain "vim").
func (e *Editor) OpenWait(ctx context.Context, paths []string) error {
	shellCmd := substitute(e.review, "", paths)
	l := log.FromContext(ctx)
	l.Debug("opening review view", "cmd", shellCmd)

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		l.Println("Warning: stdin is not a terminal; terminal editors may not work here")
	}

	c := exec.CommandContext(ctx, "sh", "-c", shellCmd)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("editor exited with error: %w", err)
	}
	return nil
}

// substitute fills {path} and {files} placeholders with shell-quoted values.
func substitute(template, path string, files []string) string {
	quoted := make([]string, len(files))
	for i, f := range files {
		quoted[i] = shellQuote(f)
	}
	cmd := strings.ReplaceAll(template, "{path}", shellQuote(path))
	return strings.ReplaceAll(cmd, "{files}", strings.Join(quoted, " "))
}

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// Single quotes preserve everything literally except single quotes
	// themselves. To include one, end the quoted string, add an escaped
	// quote, and restart: "it's" becomes 'it'\''s'.
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// commandName extracts the binary name from a command template.
func commandName(template string) string {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
