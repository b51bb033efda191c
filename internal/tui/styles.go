package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63"))

	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	numberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tagStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	completedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	bookmarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	answerStyle    = lipgloss.NewStyle().PaddingLeft(6)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	barFullStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	barEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	notificationStyle = lipgloss.NewStyle().Padding(0, 1).
				Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	fadingStyle = notificationStyle.Foreground(lipgloss.Color("243"))
)
