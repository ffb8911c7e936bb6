// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions and the plain-mode switch
// so doctor, init and tidy render status the same way.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the output
var (
	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for missing paths and failures (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Warning is used for stale items (orange)
	Warning lipgloss.TerminalColor = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
