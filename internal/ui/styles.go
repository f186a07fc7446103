// Package ui provides styled terminal output for the skillref CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Green   = lipgloss.Color("#22C55E")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Gray    = lipgloss.Color("#E5E7EB")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(Gray)

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)
