package debounce

import (
	"context"
	"sync"
	"time"

	"github.com/vnykmshr/godebounce/pkg/common/errors"
	"github.com/vnykmshr/godebounce/pkg/common/validation"
)

// Target is the operation wrapped by a Debouncer. The context carries the
// call-context bound at the triggering call; args are forwarded opaquely
// from the most recent call. Any result of the underlying work is
// discarded, so side effects are the only output of a debounced target.
type Target func(ctx context.Context, args ...interface{})

// Mode selects which edges of a call burst invoke the target.
//
// A burst is an unbroken sequence of calls where each call arrives before
// the previous call's countdown would have elapsed.
type Mode int

const (
	// Trailing invokes the target once, after calls stop arriving for the
	// wait duration, with the arguments of the last call. This is the
	// default.
	Trailing Mode = iota

	// Leading invokes the target immediately on the first call of a burst
	// and suppresses every later call until the burst settles.
	Leading

	// Both invokes the target at burst start and again after the burst
	// settles, carrying the latest arguments.
	Both
)

// String returns the lowercase mode name.
func (m Mode) String() string {
	switch m {
	case Trailing:
		return "trailing"
	case Leading:
		return "leading"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m >= Trailing && m <= Both
}

// Timer is a cancellable handle to a scheduled one-shot callback. Stop
// reports whether it prevented the callback from running; stopping an
// already fired or stopped timer is a no-op. *time.Timer satisfies Timer.
type Timer interface {
	Stop() bool
}

// Scheduler provides one-shot delayed callbacks. It is the only timing
// facility a Debouncer depends on, so tests can substitute a virtual clock
// instead of waiting on real time.
type Scheduler interface {
	// Schedule arranges for fn to run once after delay and returns a
	// cancellable handle. fn may run on a different goroutine.
	Schedule(delay time.Duration, fn func()) Timer
}

// SystemScheduler implements Scheduler using the runtime timer heap.
type SystemScheduler struct{}

// Schedule runs fn once after delay via time.AfterFunc.
func (SystemScheduler) Schedule(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

// Debouncer rate-limits invocations of a wrapped target function. Rapid
// successive calls collapse into at most one settled invocation per
// quiescence window, optionally also firing on the first call of a burst
// depending on the configured Mode.
type Debouncer interface {
	// Call records ctx and args as the latest call and advances the
	// debounce state machine: it restarts the quiescence countdown and,
	// in Leading or Both mode, may invoke the target synchronously on the
	// first call of a burst. It never blocks on the countdown.
	Call(ctx context.Context, args ...interface{})

	// Cancel discards any pending invocation without firing it and closes
	// the current burst. Safe to call when nothing is pending.
	Cancel()

	// Flush fires the pending invocation immediately with the most
	// recently recorded ctx and args. No-op when nothing is pending.
	Flush()

	// Pending reports whether an invocation is currently scheduled.
	Pending() bool

	// Wait returns the configured quiescence window.
	Wait() time.Duration

	// Mode returns the configured mode.
	Mode() Mode
}

// Config holds configuration options for creating a new Debouncer.
type Config struct {
	// Wait is the quiescence window: the delay after the most recent call
	// before the trailing edge fires. Zero means the trailing edge fires
	// as soon as the scheduler allows.
	Wait time.Duration

	// Mode selects the firing edges. The zero value is Trailing.
	Mode Mode

	// Scheduler provides one-shot delayed callbacks. If nil,
	// SystemScheduler is used.
	Scheduler Scheduler
}

// debouncer implements the Debouncer interface. A mutex guards the state,
// making instances safe for concurrent use; the target always runs outside
// the lock.
type debouncer struct {
	mu     sync.Mutex
	target Target
	wait   time.Duration
	mode   Mode
	sched  Scheduler

	timer        Timer
	gen          uint64
	lastCtx      context.Context
	lastArgs     []interface{}
	leadingFired bool
}

// New creates a new debouncer and panics on invalid parameters.
func New(target Target, wait time.Duration, mode Mode) Debouncer {
	d, err := NewSafe(target, wait, mode)
	if err != nil {
		panic(err)
	}
	return d
}

// NewWithConfig creates a new debouncer from a Config and panics on invalid
// parameters.
func NewWithConfig(target Target, config Config) Debouncer {
	d, err := NewWithConfigSafe(target, config)
	if err != nil {
		panic(err)
	}
	return d
}

// NewSafe creates a new debouncer with validation that returns an error instead of panicking.
// This is the recommended way to create debouncers for production use.
func NewSafe(target Target, wait time.Duration, mode Mode) (Debouncer, error) {
	return NewWithConfigSafe(target, Config{Wait: wait, Mode: mode})
}

// NewWithConfigSafe creates a new debouncer with validation that returns an error instead of panicking.
// This is the recommended way to create debouncers for production use.
func NewWithConfigSafe(target Target, config Config) (Debouncer, error) {
	if target == nil {
		return nil, errors.NewValidationError("debounce", "target", nil, "cannot be nil").
			WithHint("provide the function to debounce")
	}
	if err := validation.ValidateNonNegativeDuration("debounce", "wait", config.Wait); err != nil {
		return nil, err
	}
	if !config.Mode.valid() {
		return nil, errors.NewValidationError("debounce", "mode", config.Mode, "unrecognized mode").
			WithHint("use Trailing, Leading, or Both")
	}
	if config.Scheduler == nil {
		config.Scheduler = SystemScheduler{}
	}

	return &debouncer{
		target: target,
		wait:   config.Wait,
		mode:   config.Mode,
		sched:  config.Scheduler,
	}, nil
}
