package review

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fieldline/gws/internal/log"
)

// Precondition failures. All are terminal for the invocation and none
// occur after the first checkout.
var (
	ErrNotARepository       = errors.New("not a git repository")
	ErrDirtyWorkingTree     = errors.New("working tree or index has uncommitted changes")
	ErrInvalidArgumentCount = errors.New("expected exactly two branch arguments")
	ErrInvalidRange         = errors.New("range is empty or reversed")
)

// Git is the version-control query surface the walker consumes.
type Git interface {
	RepoRoot(ctx context.Context, dir string) (string, error)
	IsClean(ctx context.Context, repoRoot string) (bool, error)
	IsAncestor(ctx context.Context, repoRoot, ancestor, descendant string) (bool, error)
	Commits(ctx context.Context, repoRoot, from, to string) ([]string, error)
	ChangedFiles(ctx context.Context, repoRoot, commit string) ([]string, error)
	CommitMessage(ctx context.Context, repoRoot, commit string) (string, error)
	Checkout(ctx context.Context, repoRoot, ref string) error
	CurrentRef(ctx context.Context, repoRoot string) (string, error)
}

// Presenter is the editor surface the walker consumes. OpenWait is the
// walk's sole suspension point: it must not return until the reviewer
// closes the view.
type Presenter interface {
	OpenWindow(ctx context.Context, path string) error
	OpenWait(ctx context.Context, paths []string) error
}

// PauseFunc runs between commits. Returning false stops the walk early
// (the starting ref is still restored).
type PauseFunc func(ctx context.Context, commit string, pos, total int) (bool, error)

// Walker drives a commit-by-commit review of a branch range.
type Walker struct {
	git         Git
	presenter   Presenter
	scratchBase string // "" means the system temp dir
	keepScratch bool
	pause       PauseFunc
}

// Option configures a Walker.
type Option func(*Walker)

// WithScratchBase places scratch message files under base instead of the
// system temp dir.
func WithScratchBase(base string) Option {
	return func(w *Walker) { w.scratchBase = base }
}

// WithKeepScratch leaves scratch message files in place after each view
// closes.
func WithKeepScratch(keep bool) Option {
	return func(w *Walker) { w.keepScratch = keep }
}

// WithPause installs a hook that runs after each commit's view closes.
func WithPause(pause PauseFunc) Option {
	return func(w *Walker) { w.pause = pause }
}

// NewWalker creates a Walker on the given collaborators.
func NewWalker(g Git, p Presenter, opts ...Option) *Walker {
	w := &Walker{git: g, presenter: p}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Review walks the non-merge commits of fromBranch..toBranch, oldest first.
// Args carries the raw branch arguments [toBranch, fromBranch]; dir is any
// directory inside the repository.
//
// Preconditions are checked in a fixed order before any checkout: a valid
// repository, a clean working tree and index, exactly two arguments, and
// fromBranch being an ancestor of toBranch. An empty range succeeds without
// touching the checkout. Once the walk starts, the starting ref is restored
// on every exit path, including mid-walk failure and cancellation.
func (w *Walker) Review(ctx context.Context, dir string, args []string) error {
	root, err := w.git.RepoRoot(ctx, dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotARepository, err)
	}

	clean, err := w.git.IsClean(ctx, root)
	if err != nil {
		return err
	}
	if !clean {
		return ErrDirtyWorkingTree
	}

	if len(args) != 2 {
		return fmt.Errorf("%w, got %d", ErrInvalidArgumentCount, len(args))
	}
	toBranch, fromBranch := args[0], args[1]

	ok, err := w.git.IsAncestor(ctx, root, fromBranch, toBranch)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s is not an ancestor of %s", ErrInvalidRange, fromBranch, toBranch)
	}

	commits, err := w.git.Commits(ctx, root, fromBranch, toBranch)
	if err != nil {
		return err
	}

	l := log.FromContext(ctx)
	if len(commits) == 0 {
		l.Printf("No commits to review in %s..%s\n", fromBranch, toBranch)
		return nil
	}

	startRef, err := w.git.CurrentRef(ctx, root)
	if err != nil {
		return err
	}

	return w.walk(ctx, root, startRef, commits)
}

// walk visits each commit and restores startRef on every exit path.
func (w *Walker) walk(ctx context.Context, root, startRef string, commits []string) (err error) {
	defer func() {
		// Restoration must run even when the walk context is cancelled.
		restoreCtx := context.WithoutCancel(ctx)
		if rerr := w.git.Checkout(restoreCtx, root, startRef); rerr != nil {
			rerr = fmt.Errorf("failed to restore %s: %w", startRef, rerr)
			err = errors.Join(err, rerr)
		}
	}()

	l := log.FromContext(ctx)
	total := len(commits)

	for i, commit := range commits {
		if err := ctx.Err(); err != nil {
			return err
		}
		pos := i + 1
		l.Printf("Reviewing %s (%d of %d)\n", commit, pos, total)

		if err := w.reviewCommit(ctx, root, commit, pos, total); err != nil {
			return fmt.Errorf("review of %s: %w", commit, err)
		}

		if w.pause != nil && pos < total {
			cont, err := w.pause(ctx, commit, pos, total)
			if err != nil {
				return err
			}
			if !cont {
				l.Printf("Review stopped after %d of %d\n", pos, total)
				return nil
			}
		}
	}
	return nil
}

// reviewCommit checks out one commit and blocks on its review view.
func (w *Walker) reviewCommit(ctx context.Context, root, commit string, pos, total int) error {
	if err := w.git.Checkout(ctx, root, commit); err != nil {
		return err
	}

	files, err := w.git.ChangedFiles(ctx, root, commit)
	if err != nil {
		return err
	}

	if err := w.presenter.OpenWindow(ctx, root); err != nil {
		return err
	}

	message, err := w.git.CommitMessage(ctx, root, commit)
	if err != nil {
		return err
	}

	scratch, err := writeScratch(w.scratchBase, message, pos, total)
	if err != nil {
		return err
	}
	if !w.keepScratch {
		defer removeScratch(ctx, scratch)
	}

	paths := make([]string, 0, len(files)+1)
	for _, f := range files {
		paths = append(paths, filepath.Join(root, f))
	}
	paths = append(paths, scratch)

	// Sole suspension point: returns when the reviewer closes the view.
	return w.presenter.OpenWait(ctx, paths)
}
