package review

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// fakeGit implements Git against in-memory state and records checkouts.
type fakeGit struct {
	root       string
	rootErr    error
	clean      bool
	ancestor   bool
	commits    []string
	files      map[string][]string
	messages   map[string]string
	currentRef string

	checkouts    []string
	failCheckout string // checkout of this ref fails
}

func (g *fakeGit) RepoRoot(ctx context.Context, dir string) (string, error) {
	if g.rootErr != nil {
		return "", g.rootErr
	}
	return g.root, nil
}

func (g *fakeGit) IsClean(ctx context.Context, repoRoot string) (bool, error) {
	return g.clean, nil
}

func (g *fakeGit) IsAncestor(ctx context.Context, repoRoot, ancestor, descendant string) (bool, error) {
	return g.ancestor, nil
}

func (g *fakeGit) Commits(ctx context.Context, repoRoot, from, to string) ([]string, error) {
	return g.commits, nil
}

func (g *fakeGit) ChangedFiles(ctx context.Context, repoRoot, commit string) ([]string, error) {
	return g.files[commit], nil
}

func (g *fakeGit) CommitMessage(ctx context.Context, repoRoot, commit string) (string, error) {
	return g.messages[commit], nil
}

func (g *fakeGit) Checkout(ctx context.Context, repoRoot, ref string) error {
	if ref == g.failCheckout {
		return fmt.Errorf("checkout of %s failed", ref)
	}
	g.checkouts = append(g.checkouts, ref)
	return nil
}

func (g *fakeGit) CurrentRef(ctx context.Context, repoRoot string) (string, error) {
	return g.currentRef, nil
}

// fakePresenter records opened windows and views, capturing scratch file
// content at view time (the walker may delete it afterwards).
type fakePresenter struct {
	windows   []string
	views     [][]string
	scratches []string
	waitErr   error
}

func (p *fakePresenter) OpenWindow(ctx context.Context, path string) error {
	p.windows = append(p.windows, path)
	return nil
}

func (p *fakePresenter) OpenWait(ctx context.Context, paths []string) error {
	p.views = append(p.views, paths)
	if len(paths) > 0 {
		if body, err := os.ReadFile(paths[len(paths)-1]); err == nil {
			p.scratches = append(p.scratches, string(body))
		}
	}
	return p.waitErr
}

func twoCommitGit() *fakeGit {
	return &fakeGit{
		root:     "/repo",
		clean:    true,
		ancestor: true,
		commits:  []string{"a1b2c3", "d4e5f6"},
		files: map[string][]string{
			"a1b2c3": {"main.go"},
			"d4e5f6": {"main.go", "util.go"},
		},
		messages: map[string]string{
			"a1b2c3": "add main",
			"d4e5f6": "add util\n\nwith a body",
		},
		currentRef: "feature-x",
	}
}

func TestReview_NotARepository(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	g.rootErr = errors.New("fatal: not a git repository")
	w := NewWalker(g, &fakePresenter{})

	err := w.Review(context.Background(), ".", []string{"main", "base"})
	if !errors.Is(err, ErrNotARepository) {
		t.Errorf("Review = %v, want ErrNotARepository", err)
	}
	if len(g.checkouts) != 0 {
		t.Errorf("checkouts = %v, want none", g.checkouts)
	}
}

func TestReview_DirtyWorkingTree(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	g.clean = false
	w := NewWalker(g, &fakePresenter{})

	err := w.Review(context.Background(), ".", []string{"main", "base"})
	if !errors.Is(err, ErrDirtyWorkingTree) {
		t.Errorf("Review = %v, want ErrDirtyWorkingTree", err)
	}
	if len(g.checkouts) != 0 {
		t.Errorf("checkouts = %v, want none", g.checkouts)
	}
}

func TestReview_InvalidArgumentCount(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{nil, {"main"}, {"a", "b", "c"}} {
		g := twoCommitGit()
		w := NewWalker(g, &fakePresenter{})

		err := w.Review(context.Background(), ".", args)
		if !errors.Is(err, ErrInvalidArgumentCount) {
			t.Errorf("Review(%v) = %v, want ErrInvalidArgumentCount", args, err)
		}
		if len(g.checkouts) != 0 {
			t.Errorf("Review(%v) checkouts = %v, want none", args, g.checkouts)
		}
	}
}

func TestReview_InvalidRange(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	g.ancestor = false
	w := NewWalker(g, &fakePresenter{})

	err := w.Review(context.Background(), ".", []string{"main", "base"})
	if !errors.Is(err, ErrInvalidRange) {
		t.Errorf("Review = %v, want ErrInvalidRange", err)
	}
	if len(g.checkouts) != 0 {
		t.Errorf("checkouts = %v, want none", g.checkouts)
	}
}

func TestReview_EmptyRangeIsNoOp(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	g.commits = nil
	w := NewWalker(g, &fakePresenter{})

	if err := w.Review(context.Background(), ".", []string{"main", "main"}); err != nil {
		t.Fatalf("Review of empty range = %v, want nil", err)
	}
	if len(g.checkouts) != 0 {
		t.Errorf("checkouts = %v, want none for empty range", g.checkouts)
	}
}

func TestReview_WalksAndRestores(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	p := &fakePresenter{}
	w := NewWalker(g, p, WithScratchBase(t.TempDir()))

	if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
		t.Fatalf("Review = %v, want nil", err)
	}

	// N commits mean N+1 checkouts: each commit, then the starting ref.
	want := []string{"a1b2c3", "d4e5f6", "feature-x"}
	if len(g.checkouts) != len(want) {
		t.Fatalf("checkouts = %v, want %v", g.checkouts, want)
	}
	for i, ref := range want {
		if g.checkouts[i] != ref {
			t.Errorf("checkouts[%d] = %q, want %q", i, g.checkouts[i], ref)
		}
	}

	// One non-blocking window per commit, on the repo root
	if len(p.windows) != 2 || p.windows[0] != "/repo" {
		t.Errorf("windows = %v, want two opens of /repo", p.windows)
	}

	// Blocking views: changed files (rooted) plus the scratch file
	if len(p.views) != 2 {
		t.Fatalf("views = %d, want 2", len(p.views))
	}
	first := p.views[0]
	if len(first) != 2 || first[0] != filepath.Join("/repo", "main.go") {
		t.Errorf("first view paths = %v", first)
	}
	second := p.views[1]
	if len(second) != 3 {
		t.Errorf("second view paths = %v, want files plus scratch", second)
	}
}

func TestReview_ScratchContent(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	p := &fakePresenter{}
	w := NewWalker(g, p, WithScratchBase(t.TempDir()))

	if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
		t.Fatalf("Review = %v, want nil", err)
	}

	if len(p.scratches) != 2 {
		t.Fatalf("scratches = %d, want 2", len(p.scratches))
	}
	want := "add main\n\n---\n\n1 of 2\n"
	if p.scratches[0] != want {
		t.Errorf("scratch[0] = %q, want %q", p.scratches[0], want)
	}
	want = "add util\n\nwith a body\n\n---\n\n2 of 2\n"
	if p.scratches[1] != want {
		t.Errorf("scratch[1] = %q, want %q", p.scratches[1], want)
	}
}

func TestReview_ScratchCleanup(t *testing.T) {
	t.Parallel()

	t.Run("removed by default", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		g := twoCommitGit()
		p := &fakePresenter{}
		w := NewWalker(g, p, WithScratchBase(base))

		if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
			t.Fatalf("Review = %v, want nil", err)
		}
		leftovers, err := os.ReadDir(base)
		if err != nil {
			t.Fatalf("ReadDir = %v", err)
		}
		if len(leftovers) != 0 {
			t.Errorf("scratch dirs left behind: %v", leftovers)
		}
	})

	t.Run("kept with WithKeepScratch", func(t *testing.T) {
		t.Parallel()
		base := t.TempDir()
		g := twoCommitGit()
		w := NewWalker(g, &fakePresenter{}, WithScratchBase(base), WithKeepScratch(true))

		if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
			t.Fatalf("Review = %v, want nil", err)
		}
		leftovers, err := os.ReadDir(base)
		if err != nil {
			t.Fatalf("ReadDir = %v", err)
		}
		if len(leftovers) != 2 {
			t.Errorf("kept scratch dirs = %d, want 2", len(leftovers))
		}
	})
}

func TestReview_RestoresOnMidWalkFailure(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	g.failCheckout = "d4e5f6"
	w := NewWalker(g, &fakePresenter{}, WithScratchBase(t.TempDir()))

	err := w.Review(context.Background(), ".", []string{"main", "base"})
	if err == nil {
		t.Fatal("Review with failing checkout = nil, want error")
	}

	// First commit checked out, then the starting ref restored despite the failure
	want := []string{"a1b2c3", "feature-x"}
	if len(g.checkouts) != len(want) || g.checkouts[len(g.checkouts)-1] != "feature-x" {
		t.Errorf("checkouts = %v, want %v", g.checkouts, want)
	}
}

func TestReview_RestoresOnViewFailure(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	p := &fakePresenter{waitErr: errors.New("editor crashed")}
	w := NewWalker(g, p, WithScratchBase(t.TempDir()))

	err := w.Review(context.Background(), ".", []string{"main", "base"})
	if err == nil {
		t.Fatal("Review with failing view = nil, want error")
	}
	if last := g.checkouts[len(g.checkouts)-1]; last != "feature-x" {
		t.Errorf("last checkout = %q, want starting ref restored", last)
	}
}

func TestReview_RestoresOnCancellation(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	p := &fakePresenter{}
	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while the first view is open
	w := NewWalker(g, &cancellingPresenter{inner: p, cancel: cancel}, WithScratchBase(t.TempDir()))

	err := w.Review(ctx, ".", []string{"main", "base"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Review = %v, want context.Canceled", err)
	}
	if last := g.checkouts[len(g.checkouts)-1]; last != "feature-x" {
		t.Errorf("last checkout = %q, want starting ref restored", last)
	}
}

// cancellingPresenter cancels the walk context during the first view.
type cancellingPresenter struct {
	inner  *fakePresenter
	cancel context.CancelFunc
}

func (p *cancellingPresenter) OpenWindow(ctx context.Context, path string) error {
	return p.inner.OpenWindow(ctx, path)
}

func (p *cancellingPresenter) OpenWait(ctx context.Context, paths []string) error {
	p.cancel()
	return p.inner.OpenWait(ctx, paths)
}

func TestReview_PauseStopsEarly(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	p := &fakePresenter{}
	var pauses []int
	w := NewWalker(g, p,
		WithScratchBase(t.TempDir()),
		WithPause(func(ctx context.Context, commit string, pos, total int) (bool, error) {
			pauses = append(pauses, pos)
			return false, nil
		}))

	if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
		t.Fatalf("Review = %v, want nil", err)
	}

	if len(pauses) != 1 || pauses[0] != 1 {
		t.Errorf("pauses = %v, want one pause after the first commit", pauses)
	}
	// Only the first commit reviewed, then restoration
	want := []string{"a1b2c3", "feature-x"}
	if len(g.checkouts) != 2 || g.checkouts[1] != "feature-x" {
		t.Errorf("checkouts = %v, want %v", g.checkouts, want)
	}
	if len(p.views) != 1 {
		t.Errorf("views = %d, want 1", len(p.views))
	}
}

func TestReview_PauseNotCalledAfterLast(t *testing.T) {
	t.Parallel()
	g := twoCommitGit()
	var pauses int
	w := NewWalker(g, &fakePresenter{},
		WithScratchBase(t.TempDir()),
		WithPause(func(ctx context.Context, commit string, pos, total int) (bool, error) {
			pauses++
			return true, nil
		}))

	if err := w.Review(context.Background(), ".", []string{"main", "base"}); err != nil {
		t.Fatalf("Review = %v, want nil", err)
	}
	if pauses != 1 {
		t.Errorf("pauses = %d, want 1 (no pause after the final commit)", pauses)
	}
}

func TestFooter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos, total int
		want       string
	}{
		{1, 2, "1 of 2"},
		{2, 2, "2 of 2"},
		{1, 1, "1 of 1"},
		{10, 40, "10 of 40"},
	}
	for _, tt := range tests {
		if got := Footer(tt.pos, tt.total); got != tt.want {
			t.Errorf("Footer(%d, %d) = %q, want %q", tt.pos, tt.total, got, tt.want)
		}
	}
}
