package cpu

import "codeberg.org/mutker/cpumon/internal/errors"

const (
	ErrMetricsUnavailable = errors.ErrorCode("cpu_metrics_unavailable")
	ErrInvalidSample      = errors.ErrorCode("cpu_invalid_sample")
	ErrNoSamples          = errors.ErrorCode("cpu_no_samples")
)
