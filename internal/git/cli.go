package git

import "context"

// CLI adapts this package's free functions to the collaborator interfaces
// consumed by the review package. The zero value is ready to use.
type CLI struct{}

func (CLI) RepoRoot(ctx context.Context, dir string) (string, error) {
	return RepoRoot(ctx, dir)
}

func (CLI) IsClean(ctx context.Context, repoRoot string) (bool, error) {
	return IsClean(ctx, repoRoot)
}

func (CLI) IsAncestor(ctx context.Context, repoRoot, ancestor, descendant string) (bool, error) {
	return IsAncestor(ctx, repoRoot, ancestor, descendant)
}

func (CLI) Commits(ctx context.Context, repoRoot, from, to string) ([]string, error) {
	return Commits(ctx, repoRoot, from, to)
}

func (CLI) ChangedFiles(ctx context.Context, repoRoot, commit string) ([]string, error) {
	return ChangedFiles(ctx, repoRoot, commit)
}

func (CLI) CommitMessage(ctx context.Context, repoRoot, commit string) (string, error) {
	return CommitMessage(ctx, repoRoot, commit)
}

func (CLI) Checkout(ctx context.Context, repoRoot, ref string) error {
	return Checkout(ctx, repoRoot, ref)
}

func (CLI) CurrentRef(ctx context.Context, repoRoot string) (string, error) {
	return CurrentRef(ctx, repoRoot)
}
