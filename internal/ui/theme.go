package ui

import (
	"codeberg.org/mutker/cpumon/internal/chart"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#1f77b4")
	fill   = lipgloss.Color("#4a90c8")
	grid   = lipgloss.Color("#1b3a52")
	muted  = lipgloss.Color("#808080")
	warn   = lipgloss.Color("#d62728")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	captionStyle = lipgloss.NewStyle().Foreground(muted)
	staleStyle   = lipgloss.NewStyle().Foreground(warn)
	frameStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent)
)

func chartStyle(dashboard bool) chart.Style {
	return chart.Style{
		Line:     accent,
		Fill:     fill,
		Grid:     grid,
		ShowGrid: dashboard,
	}
}
