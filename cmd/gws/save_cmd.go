package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/log"
)

func newSaveCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:     "save",
		Short:   "Commit the current work",
		Aliases: []string{"s"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Stage and commit all changes in the current repository.

Without -m, a message of the form "wip(<branch>): <timestamp>" is
generated. A clean tree is a no-op.`,
		Example: `  gws save                   # Commit with a generated wip message
  gws save -m "checkpoint"   # Commit with an explicit message`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			repo, err := currentRepo(ctx)
			if err != nil {
				return err
			}

			clean, err := git.IsClean(ctx, repo.Root)
			if err != nil {
				return err
			}
			if clean {
				l.Println("Nothing to save, working tree is clean")
				return nil
			}

			if message == "" {
				branch := repo.Branch
				if branch == "" {
					branch = "detached"
				}
				message = fmt.Sprintf("wip(%s): %s", branch, time.Now().Format(time.RFC3339))
			}

			if err := git.CommitAll(ctx, repo.Root, message); err != nil {
				return fmt.Errorf("save failed: %w", err)
			}

			l.Printf("Saved: %s\n", message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}
