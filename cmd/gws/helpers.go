package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/git"
)

// repoInfo describes the repository around the working directory.
type repoInfo struct {
	Root   string
	Name   string
	Branch string // "" when detached
}

// currentRepo resolves the repository around the working directory.
func currentRepo(ctx context.Context) (repoInfo, error) {
	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return repoInfo{}, fmt.Errorf("not inside a git repository: %w", err)
	}
	branch, err := git.CurrentBranch(ctx, root)
	if err != nil {
		return repoInfo{}, err
	}
	return repoInfo{
		Root:   root,
		Name:   git.RepoName(root),
		Branch: branch,
	}, nil
}

// workspaceDir resolves the workspace directory and makes sure it exists.
func workspaceDir() (string, error) {
	dir, err := cfg.DefaultWorkspaceDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create workspace dir: %w", err)
	}
	return dir, nil
}

// completeBranches offers local branch names for completion.
func completeBranches(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	root, err := git.RepoRoot(ctx, workDir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branches, err := git.ListBranches(ctx, root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
