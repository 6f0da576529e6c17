package window_test

import (
	"sync"
	"testing"

	"codeberg.org/mutker/cpumon/internal/errors"
	"codeberg.org/mutker/cpumon/internal/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWindow(t *testing.T, capacity int) *window.Window {
	t.Helper()
	w, err := window.New(capacity)
	require.NoError(t, err)
	return w
}

func TestNewFillsWithZeros(t *testing.T) {
	for _, n := range []int{1, 3, 10, 60} {
		w := newWindow(t, n)
		snap := w.Snapshot()
		assert.Len(t, snap, n)
		assert.Equal(t, make([]float64, n), snap)
		assert.Equal(t, n, w.Cap())
	}
}

func TestNewRejectsInvalidCapacity(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := window.New(n)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, window.ErrInvalidCapacity))
	}
}

func TestPushKeepsLength(t *testing.T) {
	w := newWindow(t, 4)
	for i := 0; i < 25; i++ {
		w.Push(float64(i))
		assert.Len(t, w.Snapshot(), 4)
	}
}

func TestPushPartialFill(t *testing.T) {
	w := newWindow(t, 6)
	w.Push(1.5)
	w.Push(2.5)
	w.Push(3.5)

	assert.Equal(t, []float64{0, 0, 0, 1.5, 2.5, 3.5}, w.Snapshot())
}

func TestPushEvictsOldest(t *testing.T) {
	w := newWindow(t, 5)
	for i := 1; i <= 6; i++ {
		w.Push(float64(i))
	}

	assert.Equal(t, []float64{2, 3, 4, 5, 6}, w.Snapshot())
}

func TestScenarioCapacityThree(t *testing.T) {
	w := newWindow(t, 3)
	assert.Equal(t, []float64{0, 0, 0}, w.Snapshot())

	steps := []struct {
		push float64
		want []float64
	}{
		{10, []float64{0, 0, 10}},
		{20, []float64{0, 10, 20}},
		{30, []float64{10, 20, 30}},
		{40, []float64{20, 30, 40}},
	}

	for _, s := range steps {
		w.Push(s.push)
		assert.Equal(t, s.want, w.Snapshot())
		assert.Equal(t, s.push, w.Latest())
	}
}

func TestSnapshotIsIdempotentCopy(t *testing.T) {
	w := newWindow(t, 3)
	w.Push(7)

	first := w.Snapshot()
	second := w.Snapshot()
	assert.Equal(t, first, second)

	first[2] = 99
	assert.Equal(t, []float64{0, 0, 7}, w.Snapshot())
}

func TestCapacityOne(t *testing.T) {
	w := newWindow(t, 1)
	w.Push(12)
	w.Push(13)
	assert.Equal(t, []float64{13}, w.Snapshot())
	assert.Equal(t, 13.0, w.Latest())
}

// Every snapshot taken while a writer is pushing an increasing sequence
// must be a contiguous run of that sequence.
func TestConcurrentPushSnapshot(t *testing.T) {
	const (
		capacity = 8
		pushes   = 5000
	)

	w := newWindow(t, capacity)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= pushes; i++ {
			w.Push(float64(i))
		}
	}()

	for i := 0; i < 2000; i++ {
		snap := w.Snapshot()
		require.Len(t, snap, capacity)
		for i := 1; i < len(snap); i++ {
			if snap[i-1] == 0 {
				continue
			}
			require.Equal(t, snap[i-1]+1, snap[i], "torn snapshot: %v", snap)
		}
	}

	wg.Wait()
	assert.Equal(t, float64(pushes-capacity+1), w.Snapshot()[0])
	assert.Equal(t, float64(pushes), w.Latest())
}
