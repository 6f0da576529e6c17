// Package cpu reads processor utilization and identity from the host.
package cpu

import (
	"context"
	"math"
	"strings"

	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/logger"
	gopsutil "github.com/shirou/gopsutil/v3/cpu"
)

const unknownModel = "Unknown CPU"

// Source samples aggregate CPU utilization through gopsutil.
type Source struct {
	percent func(ctx context.Context) ([]float64, error)
	info    func(ctx context.Context) ([]gopsutil.InfoStat, error)
}

func NewSource() *Source {
	return &Source{
		// A zero interval compares against the previous call, so the
		// caller's tick period becomes the measurement window.
		percent: func(ctx context.Context) ([]float64, error) {
			return gopsutil.PercentWithContext(ctx, 0, false)
		},
		info: gopsutil.InfoWithContext,
	}
}

// Sample returns the utilization percentage since the previous call.
func (s *Source) Sample(ctx context.Context) (float64, error) {
	errFactory := errors.New()

	pct, err := s.percent(ctx)
	if err != nil {
		return 0, errFactory.Wrap(ErrMetricsUnavailable, err)
	}
	if len(pct) == 0 {
		return 0, errFactory.New(ErrNoSamples)
	}

	return pct[0], nil
}

// Identify returns the processor model name.
func (s *Source) Identify() string {
	infos, err := s.info(context.Background())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read CPU info")
		return unknownModel
	}

	for _, info := range infos {
		if name := strings.TrimSpace(info.ModelName); name != "" {
			return name
		}
	}

	return unknownModel
}

func valid(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}
