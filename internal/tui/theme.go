package tui

import "github.com/charmbracelet/lipgloss"

type theme struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	label     lipgloss.Style
	status    lipgloss.Style
	err       lipgloss.Style
	clock     lipgloss.Style
	muted     lipgloss.Style
	accent    lipgloss.Style
	notice    lipgloss.Style
}

func newTheme(dark bool) theme {
	fg, muted, accent, warn := lipgloss.Color("236"), lipgloss.Color("244"), lipgloss.Color("25"), lipgloss.Color("160")
	if dark {
		fg, muted, accent, warn = lipgloss.Color("252"), lipgloss.Color("242"), lipgloss.Color("39"), lipgloss.Color("203")
	}
	return theme{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(muted),
		activeTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(fg).Underline(true),
		label:     lipgloss.NewStyle().Foreground(fg).Width(20),
		status:    lipgloss.NewStyle().Foreground(fg),
		err:       lipgloss.NewStyle().Foreground(warn),
		clock:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		muted:     lipgloss.NewStyle().Foreground(muted),
		accent:    lipgloss.NewStyle().Foreground(accent),
		notice: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 3).
			Foreground(fg),
	}
}
