// Package monitor is the headless frontend: it keeps the rolling window
// and logs a summary of it on every reading.
package monitor

import (
	"context"

	"codeberg.org/mutker/cpumon/internal/chart"
	"codeberg.org/mutker/cpumon/internal/logger"
	"codeberg.org/mutker/cpumon/internal/sampler"
	"codeberg.org/mutker/cpumon/internal/window"
)

type Frontend struct {
	win      *window.Window
	mode     chart.BoundsMode
	log      logger.Logger
	readings chan sampler.Reading
	done     chan struct{}
}

func New(win *window.Window, mode chart.BoundsMode, log logger.Logger) *Frontend {
	if log == nil {
		log = logger.Default()
	}

	return &Frontend{
		win:      win,
		mode:     mode,
		log:      log,
		readings: make(chan sampler.Reading, 1),
		done:     make(chan struct{}),
	}
}

// Deliver queues r for the consumer goroutine. After Run has returned,
// readings are dropped.
func (f *Frontend) Deliver(r sampler.Reading) {
	select {
	case f.readings <- r:
	case <-f.done:
	}
}

func (f *Frontend) Run(ctx context.Context) error {
	defer close(f.done)

	f.log.Info().
		Int("window", f.win.Cap()).
		Str("bounds", string(f.mode)).
		Msg("Monitor mode activated. Logging CPU utilization...")

	for {
		select {
		case <-ctx.Done():
			return nil
		case r := <-f.readings:
			f.win.Push(r.Value)
			f.Render(f.win.Snapshot(), r)
		}
	}
}

// Render logs the current value and window statistics.
func (f *Frontend) Render(snapshot []float64, r sampler.Reading) {
	bounds := chart.Compute(f.mode, snapshot)

	sum := 0.0
	for _, v := range snapshot {
		sum += v
	}

	ev := f.log.Info()
	if r.Degraded() {
		ev = f.log.Warn()
		ev.AnErr("error", r.Err)
	}

	ev.Float64("cpu", snapshot[len(snapshot)-1]).
		Float64("avg", sum/float64(len(snapshot))).
		Float64("min", bounds.Min).
		Float64("max", bounds.Max).
		Bool("stale", r.Degraded()).
		Msg("")
}
