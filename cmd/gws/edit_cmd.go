package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/editor"
	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/log"
	"github.com/fieldline/gws/internal/output"
	"github.com/fieldline/gws/internal/workspace"
)

func newEditCmd() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:     "edit [branch]",
		Short:   "Open the workspace for a branch",
		Aliases: []string{"e"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Open the workspace file for a branch in a new editor window.

Defaults to the current branch. The workspace file is created on first
use, named by the configured workspace_format.`,
		Example: `  gws edit             # Workspace for the current branch
  gws edit feature-x   # Workspace for another branch
  gws edit -p          # Print the path instead of opening`,
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

			dir, err := workspaceDir()
			if err != nil {
				return err
			}

			path, created, err := workspace.Ensure(dir, repo.Name, branch, cfg.WorkspaceFormat)
			if err != nil {
				return err
			}
			if created {
				l.Printf("Created workspace %s\n", path)
			}

			if printOnly {
				out.Println(path)
				return nil
			}

			return editor.New(cfg.Editor).OpenWindow(ctx, path)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print the workspace path instead of opening it")

	return cmd
}
