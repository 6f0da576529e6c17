// Package ui implements the interactive terminal chart using Bubbletea.
package ui

import (
	"fmt"
	"strings"

	"codeberg.org/mutker/cpumon/internal/chart"
	"codeberg.org/mutker/cpumon/internal/sampler"
	"codeberg.org/mutker/cpumon/internal/window"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 62
	defaultHeight = 16
	minChartRows  = 3
	minChartCols  = 10
	frameSize     = 2

	windowTitle = "CPU Utilization"
)

// SampleMsg carries one reading from the sampler into the event loop.
type SampleMsg struct {
	sampler.Reading
}

type Options struct {
	// Dashboard enables the captioned, gridded layout.
	Dashboard bool
	// Label names the processor in the dashboard header.
	Label string
	Mode  chart.BoundsMode
}

// Model is the root Bubbletea model. It owns the rolling window and is
// the only writer to it.
type Model struct {
	win    *window.Window
	opts   Options
	chart  chart.Chart
	help   help.Model
	width  int
	height int
	stale  bool
}

func New(win *window.Window, opts Options) Model {
	m := Model{
		win:  win,
		opts: opts,
		help: help.New(),
		chart: chart.Chart{
			Mode:  opts.Mode,
			Style: chartStyle(opts.Dashboard),
		},
	}
	m.resize(defaultWidth, defaultHeight)

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize(m.width, m.height)
		}
		return m, nil

	case SampleMsg:
		m.win.Push(msg.Value)
		m.stale = msg.Degraded()
		return m, nil
	}

	return m, nil
}

// resize fits the chart into the space left by captions and the frame.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	chrome := 2 // label + help
	if m.opts.Dashboard {
		chrome += 3 + frameSize // header, top and bottom captions
	}

	cols := width
	if m.opts.Dashboard {
		cols -= frameSize
	}

	m.chart.Width = max(minChartCols, cols)
	m.chart.Height = max(minChartRows, height-chrome)
}

func (m Model) View() string {
	snapshot := m.win.Snapshot()
	plot := m.chart.Render(snapshot)

	var sections []string
	if m.opts.Dashboard {
		// captions describe the columns actually drawn
		visible := snapshot[max(0, len(snapshot)-m.chart.Width):]
		bounds := chart.Compute(m.opts.Mode, visible)
		inner := m.chart.Width
		full := inner + frameSize

		sections = append(sections,
			spread(titleStyle.Render("CPU"), m.opts.Label, full),
			captionStyle.Render(spread("% Utilization", formatPercent(bounds.Max), full)),
			frameStyle.Render(plot),
			captionStyle.Render(spread(fmt.Sprintf("%d seconds", len(visible)), "0", full)),
		)
	} else {
		sections = append(sections, plot)
	}

	sections = append(sections, m.currentLabel(), m.help.View(keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) currentLabel() string {
	label := "Current Utilization: " + formatPercent(m.win.Latest())
	if m.stale {
		label += " " + staleStyle.Render("(stale)")
	}
	return label
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// spread places left and right at the edges of a line width cells wide.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
