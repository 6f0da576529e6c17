package window

import "codeberg.org/mutker/cpumon/internal/errors"

const (
	ErrInvalidCapacity = errors.ErrorCode("window_invalid_capacity")
)
