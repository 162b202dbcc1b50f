package practice

import "github.com/charmbracelet/lipgloss"

const maxWidth = 100

var (
	colorAccent = lipgloss.Color("#00AFD7")
	colorMuted  = lipgloss.Color("#808080")
	colorGood   = lipgloss.Color("#5FD75F")
	colorWarn   = lipgloss.Color("#FFAF00")
	colorError  = lipgloss.Color("#FF5F5F")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	roundStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	questionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	evaluationStyle = lipgloss.NewStyle().
			Foreground(colorWarn)

	feedbackStyle = lipgloss.NewStyle().
			Foreground(colorGood)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
