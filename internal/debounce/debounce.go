// Package debounce provides the timer used to coalesce bursts of resize
// events into a single recalculation.
package debounce

import (
	"sync"
	"time"
)

// Debouncer invokes its callback once per quiet period. Every Trigger resets
// the timer, cancelling any pending invocation, so the callback only fires
// after the events stop for the full interval.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	fn       func()
	timer    *time.Timer
	dead     bool
}

// New creates a debouncer that calls fn after interval of quiet.
func New(interval time.Duration, fn func()) *Debouncer {
	return &Debouncer{interval: interval, fn: fn}
}

// Trigger re-arms the timer. The callback runs on the timer goroutine once
// no further Trigger arrives within the interval.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dead {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fn)
}

// Cancel stops any pending invocation and disables the debouncer.
// Safe to call more than once.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dead = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
