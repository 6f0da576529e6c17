// Package sampler polls a utilization source on a fixed cadence and hands
// each reading to a listener.
package sampler

import (
	"context"
	"time"

	"codeberg.org/mutker/cpumon/internal/logger"
)

// Interval is the fixed sampling period.
const Interval = time.Second

// Source yields an instantaneous utilization percentage.
type Source interface {
	Sample(ctx context.Context) (float64, error)
}

// Reading is one delivered sample. Err is set when the source failed and
// Value is a fallback.
type Reading struct {
	Value float64
	Time  time.Time
	Err   error
}

// Degraded reports whether the reading is a fallback value.
func (r Reading) Degraded() bool {
	return r.Err != nil
}

// Listener receives readings in the order they were produced. Deliver is
// called from the sampler goroutine and should only hand the value off.
type Listener interface {
	Deliver(Reading)
}

type ListenerFunc func(Reading)

func (f ListenerFunc) Deliver(r Reading) { f(r) }

type Loop struct {
	src      Source
	interval time.Duration
	now      func() time.Time
	log      logger.Logger
}

type Option func(*Loop)

// WithLogger sets the logger for loop lifecycle messages.
func WithLogger(log logger.Logger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// withInterval shortens the period in tests.
func withInterval(d time.Duration) Option {
	return func(l *Loop) {
		l.interval = d
	}
}

func New(src Source, opts ...Option) *Loop {
	l := &Loop{
		src:      src,
		interval: Interval,
		now:      time.Now,
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run waits one period, samples, delivers, and repeats until ctx is done.
func (l *Loop) Run(ctx context.Context, listener Listener) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Debug().Dur("interval", l.interval).Msg("Sampler started")

	for {
		select {
		case <-ctx.Done():
			l.log.Debug().Msg("Sampler stopped")
			return nil
		case <-ticker.C:
			v, err := l.src.Sample(ctx)
			if ctx.Err() != nil {
				return nil
			}

			listener.Deliver(Reading{Value: v, Time: l.now(), Err: err})
		}
	}
}
