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
			Bold(true).
			Padding(1, 0)

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Profile styles
	ProfileDefault = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	GroupStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	RequiredStyle = lipgloss.NewStyle().
			Foreground(Warning)

	// Definitions nested under a group
	MemberStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)
