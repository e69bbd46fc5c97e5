// Package config handles gws configuration loading and validation.
//
// Configuration lives at ~/.config/gws/config.toml. A missing file is not an
// error; [Load] returns [Default] in that case. Paths in the file may use ~
// which is expanded at load time since the shell does not expand inside
// config files.
//
// # Configuration file
//
//	workspace_dir = "~/.local/share/gws/workspaces"
//	workspace_format = "{repo}-{branch}.gws"
//
//	[editor]
//	open = "code -n {path}"
//	review = "code --wait {files}"
//
//	[review]
//	keep_scratch = false
package config
