package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	QueryStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	MatchStyle = lipgloss.NewStyle().
			Background(MatchColor).
			Foreground(HeadingColor).
			Bold(true)
)
