package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Entry describes a branch and its workspace file.
type Entry struct {
	Branch   string    `json:"branch"`
	Path     string    `json:"path"`
	Exists   bool      `json:"exists"`
	Current  bool      `json:"current"`
	ModTime  time.Time `json:"modified_at,omitzero"`
	SizeByte int64     `json:"size,omitempty"`
}

// Scan builds an entry per branch, stat-ing workspace files in parallel.
// currentBranch marks the entry for the checked-out branch; pass "" when
// detached. Entry order follows branch order.
func Scan(ctx context.Context, dir, repoName, format string, branches []string, currentBranch string) ([]Entry, error) {
	entries := make([]Entry, len(branches))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8) // Bound concurrent stat calls

	for i, branch := range branches {
		g.Go(func() error {
			e := Entry{
				Branch:  branch,
				Path:    Path(dir, repoName, branch, format),
				Current: branch == currentBranch,
			}
			if info, err := os.Stat(e.Path); err == nil {
				e.Exists = true
				e.ModTime = info.ModTime()
				e.SizeByte = info.Size()
			}
			entries[i] = e
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Stale returns workspace files in dir that match the naming format but no
// longer correspond to any live branch. Files that never matched the format
// are left alone.
func Stale(dir, repoName, format string, branches []string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	expected := make(map[string]bool, len(branches))
	for _, branch := range branches {
		expected[FileName(repoName, branch, format)] = true
	}

	prefix, suffix := formatAffixes(repoName, format)

	var stale []string
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, suffix) {
			continue
		}
		if len(name) < len(prefix)+len(suffix) {
			continue
		}
		if !expected[name] {
			stale = append(stale, filepath.Join(dir, name))
		}
	}
	return stale, nil
}

// formatAffixes splits the format around {branch} with {repo} substituted,
// yielding the literal prefix and suffix a matching file name must carry.
func formatAffixes(repoName, format string) (prefix, suffix string) {
	expanded := strings.ReplaceAll(format, "{repo}", repoName)
	before, after, found := strings.Cut(expanded, "{branch}")
	if !found {
		return expanded, ""
	}
	return before, after
}
