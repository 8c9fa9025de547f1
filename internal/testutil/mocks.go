package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/vnykmshr/godebounce/pkg/debounce"
)

// ManualScheduler implements debounce.Scheduler with a virtual clock.
// Scheduled callbacks fire only when Advance moves the clock past their
// deadline, so debounce tests run deterministically without real delays.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*ManualTimer
}

// ManualTimer is a handle to a callback scheduled on a ManualScheduler.
type ManualTimer struct {
	sched   *ManualScheduler
	due     time.Time
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler creates a ManualScheduler starting at the given time.
// If zero time is provided, uses current time.
func NewManualScheduler(start time.Time) *ManualScheduler {
	if start.IsZero() {
		start = time.Now()
	}
	return &ManualScheduler{now: start}
}

// Schedule registers fn to run once the clock has advanced by delay.
func (s *ManualScheduler) Schedule(delay time.Duration, fn func()) debounce.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &ManualTimer{
		sched: s,
		due:   s.now.Add(delay),
		seq:   s.seq,
		fn:    fn,
	}
	s.seq++
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer. Reports whether it prevented the callback from
// running.
func (t *ManualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Now returns the current virtual time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// ScheduledCount returns the number of callbacks currently waiting to fire.
func (s *ManualScheduler) ScheduledCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// Advance moves the virtual clock forward by d, firing every due callback
// in deadline order (scheduling order breaks ties). Callbacks run without
// the scheduler lock held, so they may schedule or stop timers themselves.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	deadline := s.now.Add(d)

	for {
		t := s.nextDueLocked(deadline)
		if t == nil {
			break
		}
		if t.due.After(s.now) {
			s.now = t.due
		}
		t.fired = true
		fn := t.fn

		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}

	s.now = deadline
	s.pruneLocked()
	s.mu.Unlock()
}

// nextDueLocked returns the earliest live timer due at or before deadline.
func (s *ManualScheduler) nextDueLocked(deadline time.Time) *ManualTimer {
	var next *ManualTimer
	for _, t := range s.timers {
		if t.stopped || t.fired || t.due.After(deadline) {
			continue
		}
		if next == nil || t.due.Before(next.due) ||
			(t.due.Equal(next.due) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (s *ManualScheduler) pruneLocked() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			live = append(live, t)
		}
	}
	s.timers = live
}

// TargetCall records one invocation of a RecordingTarget.
type TargetCall struct {
	Ctx  context.Context
	Args []interface{}
}

// RecordingTarget records every invocation it receives. Its Target method
// satisfies debounce.Target and is safe for concurrent use.
type RecordingTarget struct {
	mu    sync.Mutex
	calls []TargetCall
}

// NewRecordingTarget creates an empty RecordingTarget.
func NewRecordingTarget() *RecordingTarget {
	return &RecordingTarget{}
}

// Target records the invocation.
func (rt *RecordingTarget) Target(ctx context.Context, args ...interface{}) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.calls = append(rt.calls, TargetCall{Ctx: ctx, Args: args})
}

// Count returns the number of recorded invocations.
func (rt *RecordingTarget) Count() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.calls)
}

// Calls returns a copy of all recorded invocations.
func (rt *RecordingTarget) Calls() []TargetCall {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]TargetCall, len(rt.calls))
	copy(out, rt.calls)
	return out
}

// Last returns the most recent invocation, if any.
func (rt *RecordingTarget) Last() (TargetCall, bool) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if len(rt.calls) == 0 {
		return TargetCall{}, false
	}
	return rt.calls[len(rt.calls)-1], true
}
