//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fieldline/gws/internal/config"
	"github.com/fieldline/gws/internal/log"
	"github.com/fieldline/gws/internal/output"
)

// testContext builds a command context with a silent logger and a captured
// stdout printer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(io.Discard, false, true))
	ctx = output.WithPrinter(ctx, &out)
	return ctx, &out
}

// setTestGlobals points the package globals at a test repo and config.
// Commands read cfg and workDir, so tests using this must not run in
// parallel.
func setTestGlobals(t *testing.T, c config.Config, dir string) {
	t.Helper()
	oldCfg, oldDir := cfg, workDir
	cfg = &c
	workDir = dir
	t.Cleanup(func() {
		cfg = oldCfg
		workDir = oldDir
	})
}

// testConfig returns a config rooted in a temp workspace dir with no-op
// editor commands.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	c := config.Default()
	c.WorkspaceDir = resolveTempDir(t)
	c.Editor.Open = "true {path}"
	c.Editor.Review = "true {files}"
	return c
}

// resolveTempDir creates a temp directory and resolves macOS symlinks.
func resolveTempDir(t *testing.T) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve symlinks: %v", err)
	}
	return resolved
}

// gitRun runs a git command in dir, failing the test on error.
func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
}

// gitOutput runs a git command in dir and returns its trimmed output.
func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return string(bytes.TrimSpace(out))
}

// setupTestRepo creates a git repo on branch main with an initial commit.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	repoPath := filepath.Join(resolveTempDir(t), "test-repo")

	gitRun(t, "", "init", "-b", "main", repoPath)
	gitRun(t, repoPath, "config", "user.email", "test@test.com")
	gitRun(t, repoPath, "config", "user.name", "Test User")
	gitRun(t, repoPath, "config", "commit.gpgsign", "false")

	writeAndCommit(t, repoPath, "README.md", "# test\n", "Initial commit")

	return repoPath
}

// writeAndCommit writes a file and commits it.
func writeAndCommit(t *testing.T, repoPath, file, content, message string) {
	t.Helper()
	writeFile(t, repoPath, file, content)
	gitRun(t, repoPath, "add", file)
	gitRun(t, repoPath, "commit", "-m", message)
}

func writeFile(t *testing.T, repoPath, file, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(repoPath, file), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", file, err)
	}
}
