package ui

import "github.com/charmbracelet/lipgloss"

// Palette holds the named styles the views render with.
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	err   lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
	star  lipgloss.Style
}

var styles = Palette{
	title: fg("#7D56F4").Bold(true).MarginBottom(1),
	ok:    fg("#04B575").Bold(true),
	err:   fg("#FF0000").Bold(true),
	warn:  fg("#FFA500"),
	help:  fg("#626262").Italic(true),
	star:  fg("#FFD700").Bold(true),
}

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
