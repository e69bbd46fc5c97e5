// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions and styling to ensure
// visual consistency across the static, progress, and prompt packages.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the current branch (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for missing or inactive entries (gray)
	Muted color.Color = lipgloss.Color("240")

	// Warning is used for stale entries (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	// AccentStyle marks the current branch's row
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// HighlightStyle for highlighting fuzzy-matched characters
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)

// Status symbols for doctor and clean output
const (
	Checkmark = "✓"
	Cross     = "✗"
)

// OK renders a green checkmark.
func OK() string {
	return SuccessStyle.Render(Checkmark)
}

// Fail renders a red cross.
func Fail() string {
	return ErrorStyle.Render(Cross)
}
