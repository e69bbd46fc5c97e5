// Package review implements the commit-by-commit review walk.
//
// A [Walker] takes a branch range, checks out each non-merge commit in it
// oldest first, and opens the commit's changed files plus a scratch file
// carrying the commit message in a blocking editor view. The walk suspends
// on each view until the reviewer closes it, then restores the original
// checkout.
//
// The walker talks to git and the editor through the [Git] and [Presenter]
// interfaces so the walk logic can be tested without either. Production
// wiring uses [github.com/fieldline/gws/internal/git.CLI] and
// [github.com/fieldline/gws/internal/editor.Editor].
//
// Precondition failures map to sentinel errors ([ErrNotARepository],
// [ErrDirtyWorkingTree], [ErrInvalidArgumentCount], [ErrInvalidRange]),
// all checked before the first checkout so a failed invocation never
// mutates the working tree.
package review
