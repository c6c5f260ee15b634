package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	cursorItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EE6FF8")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Italic(true)

	noticeCommandStyle = lipgloss.NewStyle().
				Bold(true)
)
