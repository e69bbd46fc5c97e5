package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// RepoRoot returns the absolute working tree root for the repo containing
// dir. Fails if dir is not inside a git repository.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RepoName returns the folder name of the repository root.
func RepoName(repoRoot string) string {
	return filepath.Base(repoRoot)
}

// IsInsideRepo returns true if the given path is inside a git repository.
func IsInsideRepo(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// CurrentBranch returns the current branch name.
// Returns an empty string (no error) in detached HEAD state.
func CurrentBranch(ctx context.Context, repoRoot string) (string, error) {
	output, err := outputGit(ctx, repoRoot, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentRef returns a ref suitable for restoring the current checkout:
// the branch name, or the abbreviated commit hash in detached HEAD state.
func CurrentRef(ctx context.Context, repoRoot string) (string, error) {
	branch, err := CurrentBranch(ctx, repoRoot)
	if err != nil {
		return "", err
	}
	if branch != "" {
		return branch, nil
	}
	output, err := outputGit(ctx, repoRoot, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// IsClean reports whether the working tree and staged index both match HEAD.
// Untracked files count as dirty since a checkout walk could clobber them.
func IsClean(ctx context.Context, repoRoot string) (bool, error) {
	output, err := outputGit(ctx, repoRoot, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check status: %v", err)
	}
	return len(strings.TrimSpace(string(output))) == 0, nil
}

// IsAncestor reports whether ancestor is reachable from descendant by
// following parent links.
func IsAncestor(ctx context.Context, repoRoot, ancestor, descendant string) (bool, error) {
	err := runGit(ctx, repoRoot, "merge-base", "--is-ancestor", ancestor, descendant)
	if err == nil {
		return true, nil
	}
	// Exit code 1 means "not an ancestor"; anything else (bad ref,
	// not a repo) is a real error.
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, fmt.Errorf("failed to check ancestry of %s..%s: %v", ancestor, descendant, err)
}

// Commits returns the abbreviated hashes of the non-merge commits in
// from..to (exclusive of from, inclusive of to), oldest first.
func Commits(ctx context.Context, repoRoot, from, to string) ([]string, error) {
	output, err := outputGit(ctx, repoRoot,
		"rev-list", "--reverse", "--no-merges", "--abbrev-commit", from+".."+to)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s..%s: %v", from, to, err)
	}
	return splitLines(output), nil
}

// ChangedFiles returns the paths modified by commit relative to its parent,
// relative to the repository root.
func ChangedFiles(ctx context.Context, repoRoot, commit string) ([]string, error) {
	output, err := outputGit(ctx, repoRoot,
		"diff-tree", "--no-commit-id", "--name-only", "-r", commit)
	if err != nil {
		return nil, fmt.Errorf("failed to list files of %s: %v", commit, err)
	}
	return splitLines(output), nil
}

// CommitMessage returns the full message body of a commit.
func CommitMessage(ctx context.Context, repoRoot, commit string) (string, error) {
	output, err := outputGit(ctx, repoRoot, "show", "-s", "--format=%B", commit)
	if err != nil {
		return "", fmt.Errorf("failed to read message of %s: %v", commit, err)
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// Checkout switches the working tree to the given ref.
func Checkout(ctx context.Context, repoRoot, ref string) error {
	if err := runGit(ctx, repoRoot, "checkout", "--quiet", ref); err != nil {
		return fmt.Errorf("failed to checkout %s: %v", ref, err)
	}
	return nil
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, repoRoot, branch string) bool {
	return runGit(ctx, repoRoot, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch) == nil
}

// ListBranches returns the short names of all local branches.
func ListBranches(ctx context.Context, repoRoot string) ([]string, error) {
	output, err := outputGit(ctx, repoRoot,
		"for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %v", err)
	}
	return splitLines(output), nil
}

// CommitAll stages all changes and commits them with the given message.
func CommitAll(ctx context.Context, repoRoot, message string) error {
	if err := runGit(ctx, repoRoot, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %v", err)
	}
	if err := runGit(ctx, repoRoot, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %v", err)
	}
	return nil
}

// splitLines splits command output into trimmed non-empty lines.
func splitLines(output []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
