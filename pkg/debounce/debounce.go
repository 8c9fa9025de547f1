package debounce

import (
	"context"
	"time"
)

// Call records the latest ctx/args and advances the debounce state machine.
// The most recent call's arguments always win for the eventual trailing
// fire, even when a countdown is already running.
func (d *debouncer) Call(ctx context.Context, args ...interface{}) {
	d.mu.Lock()
	d.lastCtx = ctx
	d.lastArgs = args

	leading := (d.mode == Leading || d.mode == Both) && !d.leadingFired

	// Each call supersedes the previous countdown; the old timer is
	// retired, never fired.
	if d.timer != nil {
		d.timer.Stop()
	}
	if leading {
		d.leadingFired = true
	}

	// The generation stamp lets an already-fired callback detect that it
	// lost the race to a newer call, Cancel, or Flush.
	d.gen++
	gen := d.gen
	d.timer = d.sched.Schedule(d.wait, func() { d.expire(gen) })
	d.mu.Unlock()

	if leading {
		d.target(ctx, args...)
	}
}

// expire runs when a scheduled countdown elapses. A stale callback returns
// without effect.
func (d *debouncer) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil

	fire := false
	switch d.mode {
	case Trailing:
		fire = true
	case Both:
		// The leading edge runs within the call that opened the burst, so
		// this holds for any burst that reaches its natural end.
		fire = d.leadingFired
	}

	ctx, args := d.lastCtx, d.lastArgs
	d.lastCtx, d.lastArgs = nil, nil
	d.leadingFired = false
	d.mu.Unlock()

	if fire {
		d.target(ctx, args...)
	}
}

// Cancel discards the pending invocation, if any, and closes the current
// burst. Idempotent.
func (d *debouncer) Cancel() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.lastCtx, d.lastArgs = nil, nil
	d.leadingFired = false
	d.mu.Unlock()
}

// Flush fires the pending invocation immediately with the most recently
// recorded ctx/args. Strict no-op when nothing is pending.
func (d *debouncer) Flush() {
	d.mu.Lock()
	if d.timer == nil {
		d.mu.Unlock()
		return
	}
	d.timer.Stop()
	d.timer = nil
	d.gen++
	ctx, args := d.lastCtx, d.lastArgs
	d.lastCtx, d.lastArgs = nil, nil
	d.leadingFired = false
	d.mu.Unlock()

	d.target(ctx, args...)
}

// Pending reports whether a scheduled invocation is currently owned.
func (d *debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Wait returns the configured quiescence window.
func (d *debouncer) Wait() time.Duration {
	return d.wait
}

// Mode returns the configured mode.
func (d *debouncer) Mode() Mode {
	return d.mode
}
