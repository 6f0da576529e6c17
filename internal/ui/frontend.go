package ui

import (
	"context"

	"codeberg.org/mutker/cpumon/internal/sampler"
	tea "github.com/charmbracelet/bubbletea"
)

// Frontend runs the Bubbletea program and feeds it readings.
type Frontend struct {
	program *tea.Program
}

func NewFrontend(m Model, opts ...tea.ProgramOption) *Frontend {
	return &Frontend{program: tea.NewProgram(m, opts...)}
}

// Deliver hands the reading to the event loop. It returns once the loop
// has accepted the message, not after the redraw.
func (f *Frontend) Deliver(r sampler.Reading) {
	f.program.Send(SampleMsg{Reading: r})
}

// Run blocks until the user quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, f.program.Quit)
	defer stop()

	_, err := f.program.Run()
	return err
}
