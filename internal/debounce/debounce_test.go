package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCoalescesBurst(t *testing.T) {
	d := New(30 * time.Millisecond)

	var runs atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 24; i++ {
		value := int32(i)
		d.Trigger(func() {
			runs.Add(1)
			last.Store(value)
		})
	}

	require.Eventually(t, func() bool { return runs.Load() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(24), last.Load())

	// The window stays quiet afterwards.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestTriggerAfterFire(t *testing.T) {
	d := New(10 * time.Millisecond)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	require.Eventually(t, func() bool { return runs.Load() == 1 },
		time.Second, 2*time.Millisecond)

	d.Trigger(func() { runs.Add(1) })
	require.Eventually(t, func() bool { return runs.Load() == 2 },
		time.Second, 2*time.Millisecond)
}

func TestFlushRunsPendingNow(t *testing.T) {
	d := New(time.Hour)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	require.True(t, d.Pending())

	d.Flush()
	assert.Equal(t, int32(1), runs.Load())
	assert.False(t, d.Pending())

	// Flush with nothing pending is a no-op.
	d.Flush()
	assert.Equal(t, int32(1), runs.Load())
}

func TestStopCancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

func TestIndependentDebouncers(t *testing.T) {
	persist := New(40 * time.Millisecond)
	preview := New(10 * time.Millisecond)

	var persistRuns, previewRuns atomic.Int32
	persist.Trigger(func() { persistRuns.Add(1) })
	preview.Trigger(func() { previewRuns.Add(1) })

	// Cancelling one must not disturb the other.
	persist.Stop()

	require.Eventually(t, func() bool { return previewRuns.Load() == 1 },
		time.Second, 2*time.Millisecond)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), persistRuns.Load())
}
