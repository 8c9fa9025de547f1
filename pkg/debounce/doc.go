/*
Package debounce provides call debouncing for Go applications.

A debouncer wraps a target function and collapses rapid-fire calls into at
most one settled invocation per quiescence window. It is useful when calls
may be triggered in bursts, such as UI events, file-system notifications,
or configuration updates, but the underlying operation is expensive and
only the settled state matters.

Basic usage:

	d, err := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		reindex(args[0].(string))
	}, 250*time.Millisecond, debounce.Trailing)
	if err != nil {
		// Handle invalid configuration
	}

	d.Call(ctx, "docs/a.md") // restarts the countdown
	d.Call(ctx, "docs/b.md") // latest arguments win
	// reindex("docs/b.md") runs once, 250ms after the last call

Modes:

The three modes differ in which edges of a burst invoke the target:

	// Trailing (default): one invocation, after calls stop arriving for
	// the wait duration, with the last call's arguments.
	d := debounce.New(target, wait, debounce.Trailing)

	// Leading: the first call of a burst invokes immediately; every later
	// call in the burst is suppressed and merely restarts the countdown.
	d := debounce.New(target, wait, debounce.Leading)

	// Both: one invocation at burst start and one after the burst
	// settles, carrying the most recent arguments.
	d := debounce.New(target, wait, debounce.Both)

Control operations:

	d.Cancel()       // discard the pending invocation without firing it
	d.Flush()        // fire the pending invocation now, with latest args
	ok := d.Pending() // is an invocation currently scheduled?

Cancel and Flush both close the current burst, so in Leading or Both mode
the next call fires the leading edge again.

Configuration Options:

	config := debounce.Config{
		Wait:      250 * time.Millisecond, // Quiescence window
		Mode:      debounce.Both,          // Firing edges
		Scheduler: sched,                  // Custom timer source (for testing)
	}
	d, err := debounce.NewWithConfigSafe(target, config)

Construction validates its inputs: a nil target, a negative wait, or an
unrecognized mode yields a ValidationError wrapping
errors.ErrInvalidConfiguration. After construction the debouncer itself
never fails; arguments are forwarded opaquely, and a panic raised by the
target propagates out of whichever operation triggered the invocation.

Scheduler Injection:

The debouncer depends on a minimal one-shot scheduling contract rather
than on the real clock, so tests can drive it deterministically:

	sched := testutil.NewManualScheduler(time.Now())
	d, _ := debounce.NewWithConfigSafe(target, debounce.Config{
		Wait:      100 * time.Millisecond,
		Scheduler: sched,
	})

	d.Call(ctx, "query")
	sched.Advance(100 * time.Millisecond) // trailing edge fires, no real delay

Thread Safety:

All operations are safe for concurrent use. The debouncer uses mutex-based
synchronization to protect internal state; the target is always invoked
outside the lock. At most one scheduled callback is owned at any time, and
each new call deterministically supersedes the previous countdown.
*/
package debounce
