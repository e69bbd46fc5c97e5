package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/editor"
	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/review"
	"github.com/fieldline/gws/internal/ui/prompt"
)

func newReviewCmd() *cobra.Command {
	var (
		step        bool
		keepScratch bool
	)

	cmd := &cobra.Command{
		Use:     "review <toBranch> <fromBranch>",
		Short:   "Review a branch range commit by commit",
		Aliases: []string{"r"},
		GroupID: GroupReview,
		// Argument count is validated as a review precondition so the
		// failure order stays: repo, clean tree, argument count, range.
		Args: cobra.ArbitraryArgs,
		Long: `Walk the non-merge commits of fromBranch..toBranch oldest first.

Each commit is checked out in turn; its changed files open in a blocking
editor view together with a scratch file holding the commit message and
a "<i> of <N>" progress footer. Closing the view advances to the next
commit. The starting branch is restored when the walk ends, fails, or is
interrupted.

The working tree and index must be clean, and fromBranch must be an
ancestor of toBranch.`,
		Example: `  gws review feature-x main       # Review commits main..feature-x
  gws review feature-x main --step  # Confirm before each next commit`,
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ed := editor.New(cfg.Editor)
			if err := ed.Check(); err != nil {
				return err
			}

			opts := []review.Option{
				review.WithKeepScratch(keepScratch || cfg.Review.KeepScratch),
			}
			if step {
				if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
					return fmt.Errorf("--step needs an interactive terminal")
				}
				opts = append(opts, review.WithPause(stepPause))
			}

			w := review.NewWalker(git.CLI{}, ed, opts...)
			return w.Review(ctx, workDir, args)
		},
	}

	cmd.Flags().BoolVar(&step, "step", false, "Ask before moving on to the next commit")
	cmd.Flags().BoolVar(&keepScratch, "keep-scratch", false, "Keep scratch commit-message files after each view closes")

	return cmd
}

// stepPause asks whether to continue to the next commit.
func stepPause(ctx context.Context, commit string, pos, total int) (bool, error) {
	result, err := prompt.Confirm(fmt.Sprintf("Continue to commit %d of %d?", pos+1, total))
	if err != nil {
		return false, err
	}
	if result.Cancelled {
		return false, nil
	}
	return result.Confirmed, nil
}
