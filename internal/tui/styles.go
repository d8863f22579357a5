package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	Primary   = lipgloss.Color("#00D9FF")
	Secondary = lipgloss.Color("#7C3AED")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Muted     = lipgloss.Color("#6B7280")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Profile styles
	ProfileActiveStyle = lipgloss.NewStyle().
				Foreground(Success).
				Bold(true)

	ProfileSSO = lipgloss.NewStyle().
			Foreground(Primary)

	ProfileIAM = lipgloss.NewStyle().
			Foreground(Secondary)

	ProfileKey = lipgloss.NewStyle().
			Foreground(Warning)
)
