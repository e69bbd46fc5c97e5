package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// EditorConfig holds the editor command templates.
//
// Templates are run through "sh -c" after placeholder substitution, so they
// may contain flags and shell syntax. Placeholders:
//
//	{path}  — a single file or directory path (shell-quoted)
//	{files} — a space-separated list of shell-quoted file paths
type EditorConfig struct {
	// Open opens a path in a new editor window without waiting.
	Open string `toml:"open"`
	// Review opens files in a blocking view; the command must not return
	// until the user closes the view (e.g. "code --wait", plain "vim").
	Review string `toml:"review"`
}

// ReviewConfig holds commit-review settings.
type ReviewConfig struct {
	// KeepScratch leaves the per-commit scratch message files in place
	// after the review view closes instead of deleting them.
	KeepScratch bool `toml:"keep_scratch"`
}

// Config holds the gws configuration.
type Config struct {
	// WorkspaceDir is where branch workspace files live.
	// Empty means ~/.local/share/gws/workspaces.
	WorkspaceDir string `toml:"workspace_dir"`
	// WorkspaceFormat names workspace files, e.g. "{repo}-{branch}.gws".
	WorkspaceFormat string       `toml:"workspace_format"`
	Editor          EditorConfig `toml:"editor"`
	Review          ReviewConfig `toml:"review"`
}

// DefaultWorkspaceFormat is the default format for workspace file names.
const DefaultWorkspaceFormat = "{repo}-{branch}.gws"

// Default returns the default configuration.
// Editor commands fall back to $VISUAL/$EDITOR, then vi.
func Default() Config {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return Config{
		WorkspaceFormat: DefaultWorkspaceFormat,
		Editor: EditorConfig{
			Open:   editor + " {path}",
			Review: editor + " {files}",
		},
	}
}

// DefaultWorkspaceDir returns the workspace directory, resolving the default
// under the user's home when workspace_dir is not configured.
func (c *Config) DefaultWorkspaceDir() (string, error) {
	if c.WorkspaceDir != "" {
		return c.WorkspaceDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "gws", "workspaces"), nil
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error if the path is relative (like "." or "..").
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gws", "config.toml"), nil
}

// Load reads config from ~/.config/gws/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Used by Load and by tests.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	// Validate workspace_dir (must be absolute or start with ~)
	if err := ValidatePath(cfg.WorkspaceDir, "workspace_dir"); err != nil {
		return Default(), err
	}

	// Expand ~ in workspace_dir (shell doesn't expand in config files)
	if cfg.WorkspaceDir != "" {
		expanded, err := expandPath(cfg.WorkspaceDir)
		if err != nil {
			return Default(), fmt.Errorf("expand workspace_dir: %w", err)
		}
		cfg.WorkspaceDir = expanded
	}

	if cfg.WorkspaceFormat == "" {
		cfg.WorkspaceFormat = DefaultWorkspaceFormat
	}
	if err := validateFormat(cfg.WorkspaceFormat); err != nil {
		return Default(), err
	}

	if cfg.Editor.Open == "" || cfg.Editor.Review == "" {
		def := Default()
		if cfg.Editor.Open == "" {
			cfg.Editor.Open = def.Editor.Open
		}
		if cfg.Editor.Review == "" {
			cfg.Editor.Review = def.Editor.Review
		}
	}

	return cfg, nil
}

// validateFormat checks that the workspace format produces distinct names
// per branch.
func validateFormat(format string) error {
	if !strings.Contains(format, "{branch}") {
		return fmt.Errorf("workspace_format %q must contain {branch}", format)
	}
	return nil
}
