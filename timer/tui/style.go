package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Focus     lipgloss.Style
	Break     lipgloss.Style
}

func newStyle(dark bool) style {
	main := lipgloss.Color("#1A1A1A")
	hint := lipgloss.Color("#6B6B6B")

	if dark {
		main = lipgloss.Color("#F5F5F5")
		hint = lipgloss.Color("#9E9E9E")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#FFFFFF"))

	return style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#D4A017")),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Focus:     label.Background(lipgloss.Color("#B03A2E")),
		Break:     label.Background(lipgloss.Color("#1E8449")),
	}
}
