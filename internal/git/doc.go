// Package git provides git operations via shell commands.
//
// All operations use [os/exec] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, credential
// helpers, aliases).
//
// # Repository Queries
//
//   - [RepoRoot]: resolve the working tree root
//   - [CurrentBranch], [CurrentRef]: branch / restorable ref queries
//   - [IsClean]: working tree and index cleanliness
//   - [IsAncestor]: ancestry check between two refs
//   - [ListBranches], [BranchExists]: local branch enumeration
//
// # Review Walk Support
//
//   - [Commits]: non-merge commits of a range, oldest first, abbreviated
//   - [ChangedFiles]: paths a commit touched relative to its parent
//   - [CommitMessage]: full commit message body
//   - [Checkout]: working tree mutation during a walk
//
// [CLI] bundles these free functions behind the interfaces the review
// package consumes, keeping that package testable without a git binary.
package git
