// Package debounce provides the schedule / cancel-previous-if-pending
// timer primitive used for draft persistence and preview resynthesis.
package debounce

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into a single callback run
// after a quiet window. Each trigger inside an active window cancels and
// re-arms the timer, so only the last callback of a burst ever runs.
// Instances never share timer handles; callers that need independent
// windows create independent Debouncers.
type Debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending func()
}

// New creates a Debouncer with the given quiet window.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn to run after the quiet window, superseding any
// previously scheduled callback. It never blocks the caller.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Flush runs the pending callback immediately, if any, cancelling its
// timer. Used on shutdown so the last mutation of a session is not lost
// to an open window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending callback without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
