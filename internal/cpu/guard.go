package cpu

import (
	"context"
	"sync"

	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/logger"
)

// Sampler is anything that yields a utilization percentage.
type Sampler interface {
	Sample(ctx context.Context) (float64, error)
}

// Guard validates samples from an underlying Sampler. When the sampler
// fails or yields a value outside [0, 100], Guard returns the last valid
// value (0 before the first success) alongside an ErrMetricsUnavailable
// error.
type Guard struct {
	src  Sampler
	log  logger.Logger
	mu   sync.Mutex
	last float64
}

func NewGuard(src Sampler, log logger.Logger) *Guard {
	if log == nil {
		log = logger.Default()
	}

	return &Guard{src: src, log: log}
}

func (g *Guard) Sample(ctx context.Context) (float64, error) {
	errFactory := errors.New()

	v, err := g.src.Sample(ctx)
	if err == nil && !valid(v) {
		err = errFactory.WithData(ErrInvalidSample, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if err != nil {
		g.log.Warn().Err(err).Float64("last_known", g.last).Msg("CPU sample unavailable")
		if errors.HasCode(err, ErrMetricsUnavailable) {
			return g.last, err
		}
		return g.last, errFactory.Wrap(ErrMetricsUnavailable, err)
	}

	g.last = v
	return v, nil
}
