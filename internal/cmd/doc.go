// Package cmd provides helpers for executing shell commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, repoRoot, "git", "checkout", ref); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//
//	// For commands that return output:
//	output, err := cmd.OutputContext(ctx, repoRoot, "git", "status", "--porcelain")
//	if err != nil {
//	    // err contains stderr output
//	}
//
// # Design Notes
//
// gws shells out to the git CLI and the user's editor rather than using Go
// libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers,
// editor plugins, etc.).
package cmd
