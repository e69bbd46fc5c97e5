// Package workspace maps git branches to editor workspace files.
//
// Every branch of a repository gets a deterministic workspace file name
// derived from a format string like "{repo}-{branch}.gws". Slashes in
// branch names are flattened to dashes so the result stays a single path
// element inside the workspace directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SanitizeBranch flattens a branch name into a file-name-safe form.
func SanitizeBranch(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}

// FileName computes the workspace file name for a branch based on the
// format string. Placeholders: {repo}, {branch}.
func FileName(repoName, branch, format string) string {
	name := strings.ReplaceAll(format, "{repo}", repoName)
	return strings.ReplaceAll(name, "{branch}", SanitizeBranch(branch))
}

// Path computes the absolute workspace file path for a branch.
func Path(dir, repoName, branch, format string) string {
	return filepath.Join(dir, FileName(repoName, branch, format))
}

// Ensure creates the workspace file (and its directory) if it does not
// exist yet. The file starts empty; the editor owns its content.
// Returns the path and whether the file was created.
func Ensure(dir, repoName, branch, format string) (string, bool, error) {
	path := Path(dir, repoName, branch, format)

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("stat workspace file: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", false, fmt.Errorf("create workspace dir: %w", err)
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return "", false, fmt.Errorf("create workspace file: %w", err)
	}
	return path, true, nil
}
