// Package debounce implements the trailing debounce used to commit keyword
// input: the callback runs only after the configured quiet interval has
// passed since the last trigger, with the value of the last trigger.
//
//	d := debounce.New(500*time.Millisecond, func(keyword string) {
//	    ctrl.commitKeyword(keyword)
//	})
//	d.Trigger("wid")
//	d.Trigger("widget") // resets the timer; only "widget" is committed
package debounce

import (
	"sync"
	"time"
)

// Debouncer holds a single timer that is replaced on every Trigger.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	last    string
	pending bool
	stopped bool
}

// New creates a Debouncer firing fn after delay of inactivity.
func New(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet-interval timer. Every call before
// the interval elapses replaces the previous timer, so a burst of calls
// produces exactly one fn invocation carrying the final value.
func (d *Debouncer) Trigger(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.last = v
	d.pending = true

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped || !d.pending {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.pending = false
	fn := d.fn
	d.mu.Unlock()

	fn(v)
}

// Flush fires immediately with the last triggered value, if one is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	d.fire()
}

// Pending reports whether a trigger is waiting for its quiet interval —
// this is what drives a "searching…" indicator.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

// Stop cancels any pending fire and disables the debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
