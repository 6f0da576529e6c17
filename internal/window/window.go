// Package window holds the most recent utilization samples in a fixed-size
// ring buffer.
package window

import (
	"fmt"
	"sync"

	"codeberg.org/mutker/cpumon/internal/errors"
)

// Window is a fixed-capacity FIFO of samples. It always holds exactly
// Cap() values; pushing a new sample evicts the oldest one.
type Window struct {
	mu      sync.RWMutex
	samples []float64
	head    int // index of the oldest sample
}

// New returns a window of the given capacity filled with zeros.
func New(capacity int) (*Window, error) {
	if capacity < 1 {
		return nil, errors.New().WithData(ErrInvalidCapacity, capacity)
	}

	return &Window{
		samples: make([]float64, capacity),
	}, nil
}

// Push appends sample and drops the oldest entry.
func (w *Window) Push(sample float64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.samples[w.head] = sample
	w.head = (w.head + 1) % len(w.samples)
}

// Snapshot returns a copy of the samples, oldest first.
func (w *Window) Snapshot() []float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]float64, 0, len(w.samples))
	out = append(out, w.samples[w.head:]...)
	out = append(out, w.samples[:w.head]...)

	if len(out) != len(w.samples) {
		panic(fmt.Sprintf("window: snapshot length %d, capacity %d", len(out), len(w.samples)))
	}

	return out
}

// Cap returns the fixed number of samples held.
func (w *Window) Cap() int {
	return len(w.samples)
}

// Latest returns the most recently pushed sample.
func (w *Window) Latest() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	n := len(w.samples)
	return w.samples[(w.head+n-1)%n]
}
