package integration

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vnykmshr/godebounce/internal/testutil"
	"github.com/vnykmshr/godebounce/pkg/debounce"
)

// TestTrailingWithSystemScheduler verifies the debouncer against the real
// runtime timer heap rather than the virtual clock used in unit tests.
func TestTrailingWithSystemScheduler(t *testing.T) {
	var invocations int32
	var lastArg atomic.Value

	d, err := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		lastArg.Store(args[0])
		atomic.AddInt32(&invocations, 1)
	}, 30*time.Millisecond, debounce.Trailing)
	testutil.AssertNoError(t, err)

	ctx := context.Background()
	d.Call(ctx, "a")
	d.Call(ctx, "b")
	d.Call(ctx, "c")

	testutil.WaitForInt32(t, &invocations, 1, 2*time.Second)
	testutil.AssertEqual(t, lastArg.Load().(string), "c")
	testutil.AssertEqual(t, d.Pending(), false)

	// Quiet period: no further invocations arrive.
	time.Sleep(100 * time.Millisecond)
	testutil.AssertEqual(t, atomic.LoadInt32(&invocations), 1)
}

// TestLeadingWithSystemScheduler verifies immediate firing and burst reset
// on real elapsed time.
func TestLeadingWithSystemScheduler(t *testing.T) {
	var invocations int32

	d, err := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		atomic.AddInt32(&invocations, 1)
	}, 30*time.Millisecond, debounce.Leading)
	testutil.AssertNoError(t, err)

	ctx := context.Background()
	d.Call(ctx)
	d.Call(ctx)
	testutil.AssertEqual(t, atomic.LoadInt32(&invocations), 1)

	// Let the burst settle, then the leading edge reopens.
	testutil.Eventually(t, func() bool {
		return !d.Pending()
	}, 2*time.Second, 5*time.Millisecond)

	d.Call(ctx)
	testutil.AssertEqual(t, atomic.LoadInt32(&invocations), 2)
	d.Cancel()
}

// TestCancelWithSystemScheduler verifies that cancellation beats a real
// pending timer.
func TestCancelWithSystemScheduler(t *testing.T) {
	var invocations int32

	d, err := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		atomic.AddInt32(&invocations, 1)
	}, 50*time.Millisecond, debounce.Trailing)
	testutil.AssertNoError(t, err)

	d.Call(context.Background())
	d.Cancel()

	time.Sleep(150 * time.Millisecond)
	testutil.AssertEqual(t, atomic.LoadInt32(&invocations), 0)
}

// TestConcurrentCallers verifies that concurrent bursts on one instance
// settle into a single trailing invocation.
func TestConcurrentCallers(t *testing.T) {
	var invocations int32

	d, err := debounce.NewSafe(func(ctx context.Context, args ...interface{}) {
		atomic.AddInt32(&invocations, 1)
	}, 50*time.Millisecond, debounce.Trailing)
	testutil.AssertNoError(t, err)

	ctx, cancel := testutil.WithTimeout(t)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				d.Call(ctx, n, j)
			}
		}(i)
	}
	wg.Wait()

	testutil.WaitForInt32(t, &invocations, 1, 2*time.Second)

	// No second invocation sneaks in after the burst settles.
	time.Sleep(150 * time.Millisecond)
	testutil.AssertEqual(t, atomic.LoadInt32(&invocations), 1)
}
