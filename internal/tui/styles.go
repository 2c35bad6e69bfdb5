package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorPink   = lipgloss.Color("#FF79C6")
	colorGray   = lipgloss.Color("#6272A4")
)

// Shared Styles
var (
	docStyle = lipgloss.NewStyle().Margin(0, 0)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple)

	// Form column
	formCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPurple).
			Padding(1, 2).
			Width(formWidth)

	labelStyle        = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	focusedLabelStyle = labelStyle.Copy().Foreground(colorPink).Bold(true)
	choiceStyle       = lipgloss.NewStyle().Foreground(colorCyan)

	// Code column
	PreviewHeaderStyle = lipgloss.NewStyle().
				Background(colorCyan).
				Foreground(lipgloss.Color("#282a36")).
				Bold(true).
				Padding(0, 2)

	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray)

	// Status line
	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(colorGray)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true).
				PaddingLeft(1)
)
