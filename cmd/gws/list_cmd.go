package main

import (
	"encoding/json"
	"time"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/log"
	"github.com/fieldline/gws/internal/output"
	"github.com/fieldline/gws/internal/ui/progress"
	"github.com/fieldline/gws/internal/ui/static"
	"github.com/fieldline/gws/internal/workspace"
)

// staleAfterDays is the age after which a workspace file's modified
// time is rendered as a warning in the listing.
const staleAfterDays = 30

func newListCmd() *cobra.Command {
	var (
		jsonOutput bool
		filter     string
		filesOnly  bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List branch workspaces",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List local branches and their workspace files.

The current branch is marked. Branches without a workspace file show
"(none)"; use --files to hide them instead.`,
		Example: `  gws list             # All branches and their workspaces
  gws list -f feat     # Fuzzy-filter branches
  gws list --json      # Output as JSON`,
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

			var matchedIndexes map[string][]int
			if filter != "" {
				matches := fuzzy.Find(filter, branches)
				filtered := make([]string, len(matches))
				matchedIndexes = make(map[string][]int, len(matches))
				for i, m := range matches {
					filtered[i] = m.Str
					matchedIndexes[m.Str] = m.MatchedIndexes
				}
				branches = filtered
			}

			sp := progress.NewSpinner("Scanning workspaces...")
			sp.Start()
			entries, err := workspace.Scan(ctx, dir, repo.Name, cfg.WorkspaceFormat, branches, repo.Branch)
			sp.Stop()
			if err != nil {
				return err
			}

			if filesOnly {
				withFile := entries[:0]
				for _, e := range entries {
					if e.Exists {
						withFile = append(withFile, e)
					}
				}
				entries = withFile
			}

			l.Debug("listing workspaces", "branches", len(branches), "entries", len(entries))

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				l.Println("No workspaces found")
				return nil
			}

			now := time.Now()
			var rows [][]string
			for _, e := range entries {
				row := static.EntryTableRow(e, now, staleAfterDays)
				if idx, ok := matchedIndexes[e.Branch]; ok && !e.Current {
					row[0] = static.HighlightMatches(e.Branch, idx)
				}
				rows = append(rows, row)
			}
			out.Print(static.RenderTable(static.EntryHeaders(), rows))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Fuzzy-filter branches")
	cmd.Flags().BoolVar(&filesOnly, "files", false, "Only show branches that have a workspace file")

	return cmd
}
