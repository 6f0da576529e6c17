// Package app builds the process root: metrics source, sampler, rolling
// window and frontend, and runs them together.
package app

import (
	"context"

	"codeberg.org/mutker/cpumon/internal/chart"
	"codeberg.org/mutker/cpumon/internal/config"
	"codeberg.org/mutker/cpumon/internal/cpu"
	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/logger"
	"codeberg.org/mutker/cpumon/internal/monitor"
	"codeberg.org/mutker/cpumon/internal/sampler"
	"codeberg.org/mutker/cpumon/internal/ui"
	"codeberg.org/mutker/cpumon/internal/window"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// MetricsSource reports utilization and names the processor.
type MetricsSource interface {
	sampler.Source
	Identify() string
}

// Frontend consumes readings on its own goroutine until it exits.
type Frontend interface {
	sampler.Listener
	Run(ctx context.Context) error
}

type App struct {
	cfg      *config.Config
	label    string
	loop     *sampler.Loop
	frontend Frontend
}

type Option func(*settings)

type settings struct {
	source      MetricsSource
	log         logger.Logger
	programOpts []tea.ProgramOption
}

// WithSource replaces the gopsutil metrics source.
func WithSource(src MetricsSource) Option {
	return func(s *settings) {
		s.source = src
	}
}

// WithLogger sets the logger used by the sampler, the guard and the
// monitor frontend.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) {
		s.log = log
	}
}

// WithProgramOptions passes options through to the Bubbletea program.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(s *settings) {
		s.programOpts = append(s.programOpts, opts...)
	}
}

func New(cfg *config.Config, opts ...Option) (*App, error) {
	errFactory := errors.New()

	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = cpu.NewSource()
	}
	if s.log == nil {
		s.log = logger.Default()
	}

	mode, err := chart.ParseBoundsMode(cfg.Bounds)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrInitApp, err)
	}

	win, err := window.New(cfg.Window)
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrInitApp, err)
	}

	a := &App{
		cfg:   cfg,
		label: s.source.Identify(),
		loop:  sampler.New(cpu.NewGuard(s.source, s.log), sampler.WithLogger(s.log)),
	}
	s.log.Info().Str("cpu", a.label).Int("window", cfg.Window).Str("bounds", string(mode)).Msg("Detected CPU")

	if cfg.Monitor {
		a.frontend = monitor.New(win, mode, s.log)
	} else {
		model := ui.New(win, ui.Options{
			Dashboard: cfg.Variant == config.VariantDashboard,
			Label:     a.label,
			Mode:      mode,
		})
		a.frontend = ui.NewFrontend(model, s.programOpts...)
	}

	return a, nil
}

// Label returns the processor name shown by the frontend.
func (a *App) Label() string {
	return a.label
}

// Run starts the sampler and blocks on the frontend. It returns when the
// frontend exits or ctx is cancelled, after the sampler has stopped.
func (a *App) Run(ctx context.Context) error {
	errFactory := errors.New()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.loop.Run(ctx, a.frontend); err != nil {
			return errFactory.Wrap(errors.ErrSamplerLoop, err)
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		if err := a.frontend.Run(ctx); err != nil {
			return errFactory.Wrap(errors.ErrFrontend, err)
		}
		return nil
	})

	return g.Wait()
}
