package ui

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"codeberg.org/mutker/cpumon/internal/chart"
	"codeberg.org/mutker/cpumon/internal/sampler"
	"codeberg.org/mutker/cpumon/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func newModel(t *testing.T, capacity int, opts Options) Model {
	t.Helper()
	win, err := window.New(capacity)
	require.NoError(t, err)
	return New(win, opts)
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func sample(v float64) SampleMsg {
	return SampleMsg{Reading: sampler.Reading{Value: v, Time: time.Now()}}
}

func TestInitSetsWindowTitle(t *testing.T) {
	cmd := newModel(t, 10, Options{}).Init()
	require.NotNil(t, cmd)
	assert.Equal(t, tea.SetWindowTitle("CPU Utilization")(), cmd())
}

func TestQuitKeys(t *testing.T) {
	m := newModel(t, 10, Options{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, isQuitCmd(cmd), "expected 'q' key to produce tea.Quit command")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuitCmd(cmd), "expected ctrl+c to produce tea.Quit command")
}

func TestHelpToggle(t *testing.T) {
	m := newModel(t, 10, Options{})
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, m.help.ShowAll)
}

func TestSampleMsgPushesIntoWindow(t *testing.T) {
	m := newModel(t, 3, Options{Mode: chart.Fixed})

	for _, v := range []float64{10, 20, 30, 40} {
		m = send(m, sample(v))
	}

	assert.Equal(t, []float64{20, 30, 40}, m.win.Snapshot())
	assert.Contains(t, m.View(), "Current Utilization: 40.0%")
}

func TestStaleReadingIsVisible(t *testing.T) {
	m := newModel(t, 5, Options{})

	m = send(m, SampleMsg{Reading: sampler.Reading{Value: 12, Err: stderrors.New("no permission")}})
	assert.True(t, m.stale)
	assert.Contains(t, m.View(), "(stale)")

	m = send(m, sample(14))
	assert.False(t, m.stale)
	assert.NotContains(t, m.View(), "(stale)")
}

func TestDashboardView(t *testing.T) {
	m := newModel(t, 60, Options{Dashboard: true, Label: "Test CPU 3000", Mode: chart.Fixed})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = send(m, sample(55))

	view := m.View()
	for _, want := range []string{"CPU", "Test CPU 3000", "% Utilization", "100.0%", "60 seconds", "Current Utilization: 55.0%"} {
		assert.Contains(t, view, want)
	}

	assert.Equal(t, 78, m.chart.Width)
	assert.Equal(t, 17, m.chart.Height)
	assert.Equal(t, 24, lipgloss.Height(view))
}

func TestNarrowDashboardShowsNewestSamples(t *testing.T) {
	m := newModel(t, 60, Options{Dashboard: true, Mode: chart.Fixed})
	m = send(m, tea.WindowSizeMsg{Width: 32, Height: 24})
	m = send(m, sample(100))

	require.Equal(t, 30, m.chart.Width)
	view := m.View()
	assert.Contains(t, view, "30 seconds")
	assert.NotContains(t, view, "60 seconds")
	assert.Contains(t, m.chart.Render(m.win.Snapshot()), "█", "latest reading is drawn")
}

func TestDashboardDynamicBoundsCaption(t *testing.T) {
	m := newModel(t, 3, Options{Dashboard: true, Mode: chart.Dynamic})
	for _, v := range []float64{5, 10, 15} {
		m = send(m, sample(v))
	}

	assert.Contains(t, m.View(), "15.0%")
}

func TestMinimalViewHasNoCaptions(t *testing.T) {
	m := newModel(t, 10, Options{Label: "Hidden CPU", Mode: chart.Dynamic})
	m = send(m, tea.WindowSizeMsg{Width: 40, Height: 12})

	view := m.View()
	assert.NotContains(t, view, "Hidden CPU")
	assert.NotContains(t, view, "seconds")
	assert.Equal(t, 10, m.chart.Height)
	assert.Equal(t, 40, m.chart.Width)
}

func TestResizeClampsToMinimum(t *testing.T) {
	m := newModel(t, 10, Options{Dashboard: true})
	m = send(m, tea.WindowSizeMsg{Width: 4, Height: 2})

	assert.Equal(t, minChartCols, m.chart.Width)
	assert.Equal(t, minChartRows, m.chart.Height)
}

func TestSpread(t *testing.T) {
	assert.Equal(t, "a    b", spread("a", "b", 6))
	assert.Equal(t, "left right", spread("left", "right", 3))
	assert.True(t, strings.HasPrefix(spread("CPU", "x", 20), "CPU "))
}

func TestFrontendStopsOnContextCancel(t *testing.T) {
	m := newModel(t, 10, Options{})
	f := NewFrontend(m,
		tea.WithInput(nil),
		tea.WithOutput(&strings.Builder{}),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()

	f.Deliver(sampler.Reading{Value: 33})
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("frontend did not stop after cancel")
	}
}
