package debounce

import (
	"context"
	"testing"
	"time"
)

// mustNewSafe creates a new debouncer or panics on error (for benchmarks only)
func mustNewSafe(wait time.Duration, mode Mode) Debouncer {
	d, err := NewSafe(func(ctx context.Context, args ...interface{}) {}, wait, mode)
	if err != nil {
		panic(err)
	}
	return d
}

// BenchmarkCall measures the cost of a call that reschedules the countdown
func BenchmarkCall(b *testing.B) {
	d := mustNewSafe(time.Hour, Trailing) // Long wait so the timer never fires
	defer d.Cancel()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Call(ctx, i)
	}
}

// BenchmarkCallParallel measures contended call throughput
func BenchmarkCallParallel(b *testing.B) {
	d := mustNewSafe(time.Hour, Trailing)
	defer d.Cancel()
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			d.Call(ctx)
		}
	})
}

// BenchmarkCallLeading measures burst-suppressed calls in leading mode
func BenchmarkCallLeading(b *testing.B) {
	d := mustNewSafe(time.Hour, Leading)
	defer d.Cancel()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Call(ctx)
	}
}

// BenchmarkPending measures the pending query
func BenchmarkPending(b *testing.B) {
	d := mustNewSafe(time.Hour, Trailing)
	defer d.Cancel()
	d.Call(context.Background())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Pending()
	}
}

// BenchmarkCallFlush measures a call immediately flushed
func BenchmarkCallFlush(b *testing.B) {
	d := mustNewSafe(time.Hour, Trailing)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Call(ctx)
		d.Flush()
	}
}
