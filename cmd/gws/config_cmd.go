package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldline/gws/internal/config"
	"github.com/fieldline/gws/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage gws configuration.

Config location: ~/.config/gws/config.toml`,
		Example: `  gws config init   # Create default config
  gws config path   # Print the config file path
  gws config show   # Show effective config`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  gws config init      # Create config at ~/.config/gws/config.toml
  gws config init -f   # Overwrite existing config
  gws config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfigFile)
				return nil
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(configPath); err == nil {
					return fmt.Errorf("config file already exists: %s (use -f to overwrite)", configPath)
				}
			}

			if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(configPath, []byte(config.DefaultConfigFile), 0644); err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			configPath, err := config.Path()
			if err != nil {
				return err
			}
			out.Println(configPath)
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show the effective configuration after defaults are applied.

Values come from ~/.config/gws/config.toml when present, otherwise from
built-in defaults ($VISUAL/$EDITOR for the editor commands).`,
		Example: `  gws config show          # Show effective config
  gws config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			configPath, err := config.Path()
			if err != nil {
				return err
			}
			workspaces, err := cfg.DefaultWorkspaceDir()
			if err != nil {
				return err
			}

			out.Printf("Config file: %s\n\n", configPath)
			out.Printf("workspace_dir: %s\n", workspaces)
			out.Printf("workspace_format: %s\n", cfg.WorkspaceFormat)
			out.Printf("editor.open: %s\n", cfg.Editor.Open)
			out.Printf("editor.review: %s\n", cfg.Editor.Review)
			out.Printf("review.keep_scratch: %v\n", cfg.Review.KeepScratch)

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
