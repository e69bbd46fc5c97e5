package config

// DefaultConfigFile is the commented template written by "gws config init".
const DefaultConfigFile = `# gws configuration

# Where branch workspace files are stored.
# Must be absolute or start with ~. Default: ~/.local/share/gws/workspaces
# workspace_dir = "~/.local/share/gws/workspaces"

# Workspace file naming. {repo} and {branch} are substituted; slashes in
# branch names become dashes. Must contain {branch}.
# workspace_format = "{repo}-{branch}.gws"

[editor]
# Commands run through "sh -c" after placeholder substitution.
# {path} is a single shell-quoted path, {files} a quoted list.

# Open a path in a new window without waiting.
# open = "code -n {path}"

# Open files for review; must block until the view is closed.
# review = "code --wait {files}"

[review]
# Keep per-commit scratch message files after the review view closes.
# keep_scratch = false
`
