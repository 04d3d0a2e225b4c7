package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	infoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle      = lipgloss.NewStyle().Width(12)
	focusedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
