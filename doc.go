/*
Package godebounce provides a Go library for debouncing function calls,
collapsing rapid-fire invocations into at most one settled invocation per
quiescence window.

Debouncing (pkg/debounce):
  - Trailing: invoke once, after calls stop arriving for the wait duration
  - Leading: invoke immediately on the first call of a burst, suppress the rest
  - Both: invoke at burst start and again after the burst settles

Control operations let callers cancel a pending invocation, flush it early,
or query whether one is pending. A pluggable one-shot scheduler enables
deterministic virtual-clock testing without real elapsed time.

Example usage:

	import (
		"context"
		"time"

		"github.com/vnykmshr/godebounce/pkg/debounce"
	)

	save, _ := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		persist(args[0].(Document))
	}, 500*time.Millisecond, debounce.Trailing)

	save.Call(ctx, doc) // repeated edits collapse into one persist
	defer save.Cancel()
*/
package godebounce
