// Package autosave batches rapid snapshot mutations into one persisted
// write. Classic debounce: each new snapshot resets the timer, so only the
// last write in a burst executes. Writes are fire-and-forget; the state
// machine never waits on persistence.
package autosave

import (
	"sync"
	"time"

	"routined/internal/model"
)

// DefaultDelay matches the write-through batching window of the app.
const DefaultDelay = 2 * time.Second

// SaveFunc performs the actual write. Failures are the callee's problem to
// log; the debouncer does not retry.
type SaveFunc func(model.Snapshot)

type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	save    SaveFunc
	timer   *time.Timer
	pending *model.Snapshot
	closed  bool
}

func New(delay time.Duration, save SaveFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay, save: save}
}

// Offer replaces any pending snapshot and restarts the delay window.
func (d *Debouncer) Offer(snap model.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.pending = &snap
	if d.timer == nil {
		d.timer = time.AfterFunc(d.delay, d.fire)
		return
	}
	stopTimer(d.timer)
	d.timer.Reset(d.delay)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	snap := d.pending
	d.pending = nil
	d.mu.Unlock()
	if snap != nil {
		d.save(*snap)
	}
}

// Flush writes any pending snapshot immediately. Used on quit so a burst
// right before exit is not lost to the delay window.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		stopTimer(d.timer)
	}
	snap := d.pending
	d.pending = nil
	d.mu.Unlock()
	if snap != nil {
		d.save(*snap)
	}
}

// Close flushes and refuses further offers.
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.mu.Unlock()
	d.Flush()
}

func stopTimer(timer *time.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
