package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/log"
	"github.com/fieldline/gws/internal/output"
	"github.com/fieldline/gws/internal/ui/progress"
	"github.com/fieldline/gws/internal/ui/prompt"
	"github.com/fieldline/gws/internal/workspace"
)

func newCleanCmd() *cobra.Command {
	var (
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   "Remove workspaces for deleted branches",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Remove workspace files whose branch no longer exists.

Asks for confirmation unless --force is given. Use -n to only list what
would be removed.`,
		Example: `  gws clean        # Remove stale workspaces (with confirmation)
  gws clean -n     # Show what would be removed
  gws clean -f     # Remove without asking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			repo, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			dir, err := workspaceDir()
			if err != nil {
				return err
			}

			branches, err := git.ListBranches(ctx, repo.Root)
			if err != nil {
				return err
			}

			sp := progress.NewSpinner("Scanning workspaces...")
			sp.Start()
			stale, err := workspace.Stale(dir, repo.Name, cfg.WorkspaceFormat, branches)
			sp.Stop()
			if err != nil {
				return err
			}

			if len(stale) == 0 {
				l.Println("No stale workspaces")
				return nil
			}

			for _, path := range stale {
				out.Println(filepath.Base(path))
			}

			if dryRun {
				l.Printf("Would remove %d workspace(s)\n", len(stale))
				return nil
			}

			if !force {
				result, err := prompt.Confirm(fmt.Sprintf("Remove %d stale workspace(s)?", len(stale)))
				if err != nil {
					return err
				}
				if !result.Confirmed || result.Cancelled {
					l.Println("Aborted")
					return nil
				}
			}

			bar := progress.NewProgressBar(len(stale), "Removing workspaces...")
			bar.Start()
			var removed int
			for i, path := range stale {
				bar.SetProgress(i+1, filepath.Base(path))
				if err := os.Remove(path); err != nil {
					l.Printf("Warning: failed to remove %s: %v\n", path, err)
					continue
				}
				removed++
			}
			bar.Stop()

			l.Printf("Removed %d workspace(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Only show what would be removed")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove without confirmation")

	return cmd
}
