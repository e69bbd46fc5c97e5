// Package static provides non-interactive terminal output components.
//
// This package contains components for rendering formatted output
// that does not require user interaction, such as the workspace
// listing table.
package static

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/fieldline/gws/internal/ui/styles"
	"github.com/fieldline/gws/internal/workspace"
)

// EntryHeaders returns the column headers for the workspace listing.
func EntryHeaders() []string {
	return []string{"BRANCH", "FILE", "MODIFIED", "SIZE"}
}

// EntryTableRow formats one workspace entry as a table row. The current
// branch is accented, entries without a workspace file are muted, and a
// workspace untouched for more than staleAfterDays gets a warning-styled
// age (0 disables the stale check).
func EntryTableRow(e workspace.Entry, now time.Time, staleAfterDays int) []string {
	branch := e.Branch
	if e.Current {
		branch = styles.AccentStyle.Render(branch + " *")
	}

	if !e.Exists {
		return []string{branch, styles.MutedStyle.Render("(none)"), "", ""}
	}

	age := RelativeTime(e.ModTime, now)
	if staleAfterDays > 0 && now.Sub(e.ModTime) > time.Duration(staleAfterDays)*24*time.Hour {
		age = styles.WarningStyle.Render(age)
	}

	return []string{
		branch,
		filepath.Base(e.Path),
		age,
		FormatSize(e.SizeByte),
	}
}

// HighlightMatches renders s with the runes at the given indexes
// highlighted, for showing why a fuzzy filter matched.
func HighlightMatches(s string, indexes []int) string {
	matched := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		matched[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if matched[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RelativeTime renders t as a rough age relative to now, e.g. "3 hours ago".
func RelativeTime(t time.Time, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// FormatSize renders a byte count in a compact human form.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGT"[exp])
}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
