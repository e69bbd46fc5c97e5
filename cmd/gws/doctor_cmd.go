package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/config"
	"github.com/fieldline/gws/internal/editor"
	"github.com/fieldline/gws/internal/git"
	"github.com/fieldline/gws/internal/output"
	"github.com/fieldline/gws/internal/ui/styles"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose environment issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose environment issues.

Checks:
- git is installed
- config file parses (when present)
- workspace directory is writable
- editor commands resolve in PATH`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())
			var issues int

			check := func(name string, err error) {
				if err != nil {
					out.Printf("%s %s: %v\n", styles.Fail(), name, err)
					issues++
				} else {
					out.Printf("%s %s\n", styles.OK(), name)
				}
			}

			check("git", git.CheckGit())
			check("config", checkConfig())
			check("workspace dir", checkWorkspaceDir())
			check("editor", editor.New(cfg.Editor).Check())

			out.Println()
			if issues > 0 {
				return fmt.Errorf("%d issue(s) found", issues)
			}
			out.Println("All checks passed")
			return nil
		},
	}

	return cmd
}

// checkConfig re-parses the config file so doctor reports parse errors even
// though Execute fell back to defaults.
func checkConfig() error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil // No config file is fine, defaults apply
	}
	_, err = config.LoadFrom(path)
	return err
}

// checkWorkspaceDir verifies the workspace directory can be written to.
func checkWorkspaceDir() error {
	dir, err := cfg.DefaultWorkspaceDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	probe := filepath.Join(dir, ".gws-doctor")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return fmt.Errorf("not writable: %w", err)
	}
	return os.Remove(probe)
}
