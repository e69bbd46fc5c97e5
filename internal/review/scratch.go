package review

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fieldline/gws/internal/log"
)

// scratchFileName is the file opened alongside a commit's changed files.
const scratchFileName = "commit_message.txt"

// Footer renders the review progress footer for the pos-th commit
// (1-indexed) of total.
func Footer(pos, total int) string {
	return fmt.Sprintf("%d of %d", pos, total)
}

// scratchContent renders the scratch file body: the commit message, a
// separator line, and the progress footer.
func scratchContent(message string, pos, total int) string {
	return message + "\n\n---\n\n" + Footer(pos, total) + "\n"
}

// writeScratch writes a fresh scratch message file for one commit and
// returns its path. Each commit gets its own temp directory so concurrent
// leftover files never collide.
func writeScratch(base, message string, pos, total int) (string, error) {
	dir, err := os.MkdirTemp(base, "gws-review-")
	if err != nil {
		return "", fmt.Errorf("create scratch dir: %w", err)
	}
	path := filepath.Join(dir, scratchFileName)
	if err := os.WriteFile(path, []byte(scratchContent(message, pos, total)), 0644); err != nil {
		return "", fmt.Errorf("write scratch file: %w", err)
	}
	return path, nil
}

// removeScratch deletes a scratch file's temp directory. Best effort: a
// leftover temp dir is not worth failing a review over.
func removeScratch(ctx context.Context, path string) {
	if err := os.RemoveAll(filepath.Dir(path)); err != nil {
		log.FromContext(ctx).Debug("failed to remove scratch dir", "path", path, "err", err)
	}
}
