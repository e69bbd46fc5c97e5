package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/log"
	"github.com/fieldline/gws/internal/output"
	"github.com/fieldline/gws/internal/workspace"
)

func newPathCmd() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "path [branch]",
		Short:   "Print the workspace path for a branch",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Print the workspace file path for a branch.

Defaults to the current branch. The path is printed whether or not the
file exists yet; a missing file is noted on stderr.`,
		Example: `  gws path                 # Path for the current branch
  gws path feature-x       # Path for another branch
  gws path --copy          # Copy the path to the clipboard`,
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repo, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			branch := repo.Branch
			if len(args) == 1 {
				branch = args[0]
				if !git.BranchExists(ctx, repo.Root, branch) {
					return fmt.Errorf("branch %q does not exist", branch)
				}
			}
			if branch == "" {
				return fmt.Errorf("detached HEAD: pass a branch name")
			}

			dir, err := cfg.DefaultWorkspaceDir()
			if err != nil {
				return err
			}

			path := workspace.Path(dir, repo.Name, branch, cfg.WorkspaceFormat)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				l.Printf("Note: workspace file does not exist yet (run 'gws edit %s')\n", branch)
			}

			out.Println(path)

			if copyToClipboard {
				if err := clipboard.WriteAll(path); err != nil {
					l.Printf("Warning: failed to copy to clipboard: %v\n", err)
				} else {
					l.Println("Copied to clipboard")
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy path to clipboard")

	return cmd
}
