package chart

import (
	"strings"

	"codeberg.org/mutker/cpumon/internal/errors"
)

// BoundsMode selects how the y-axis range is derived.
type BoundsMode string

const (
	// Fixed always spans 0..100 percent.
	Fixed BoundsMode = "fixed"
	// Dynamic spans the smallest to the largest sample on screen.
	Dynamic BoundsMode = "dynamic"
)

const (
	minPercent = 0.0
	maxPercent = 100.0
)

func ParseBoundsMode(s string) (BoundsMode, error) {
	switch mode := BoundsMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case Fixed, Dynamic:
		return mode, nil
	default:
		return "", errors.New().WithData(errors.ErrInvalidBounds, s)
	}
}

// Bounds is the vertical range of the plot.
type Bounds struct {
	Min, Max float64
}

func (b Bounds) Span() float64 {
	return b.Max - b.Min
}

// Compute returns the plot range for samples under mode.
func Compute(mode BoundsMode, samples []float64) Bounds {
	if mode != Dynamic || len(samples) == 0 {
		return Bounds{Min: minPercent, Max: maxPercent}
	}

	b := Bounds{Min: samples[0], Max: samples[0]}
	for _, v := range samples[1:] {
		b.Min = min(b.Min, v)
		b.Max = max(b.Max, v)
	}

	return b
}
