package debounce

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/godebounce/pkg/metrics"
)

// Trigger label values for invocation metrics.
const (
	triggerLeading  = "leading"
	triggerTrailing = "trailing"
	triggerFlush    = "flush"
)

// MetricsDebouncer wraps a Debouncer with Prometheus metrics collection.
type MetricsDebouncer struct {
	debouncer Debouncer
	name      string
	registry  *metrics.Registry
	enabled   bool

	// invocations counts target runs; deltas around an operation tell
	// whether it fired the target synchronously.
	invocations uint64

	// trigger labels invocations with the operation currently in flight.
	// Timer-driven fires read the default "trailing".
	trigger atomic.Value
}

// NewWithMetrics creates a new debouncer with metrics enabled.
func NewWithMetrics(target Target, wait time.Duration, mode Mode, name string) Debouncer {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(target, Config{Wait: wait, Mode: mode}, name, config)
}

// NewWithConfigAndMetrics creates a new debouncer with custom config and metrics.
func NewWithConfigAndMetrics(target Target, config Config, name string, metricsConfig metrics.Config) Debouncer {
	if !metricsConfig.Enabled {
		return NewWithConfig(target, config)
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		// Create custom registry if provided
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	md := &MetricsDebouncer{
		name:     name,
		registry: registry,
		enabled:  true,
	}
	md.trigger.Store(triggerTrailing)

	instrumented := func(ctx context.Context, args ...interface{}) {
		atomic.AddUint64(&md.invocations, 1)
		if md.enabled {
			md.registry.DebounceInvocations.
				WithLabelValues(md.trigger.Load().(string), md.name).Inc()
		}
		target(ctx, args...)
	}

	md.debouncer = NewWithConfig(instrumented, config)
	md.registry.DebounceWait.WithLabelValues(name).Set(config.Wait.Seconds())

	return md
}

// Call forwards to the wrapped debouncer, counting call traffic and
// suppressed calls.
func (md *MetricsDebouncer) Call(ctx context.Context, args ...interface{}) {
	if md.enabled {
		md.registry.DebounceCalls.WithLabelValues(md.name).Inc()
	}

	before := atomic.LoadUint64(&md.invocations)
	md.trigger.Store(triggerLeading)
	md.debouncer.Call(ctx, args...)
	md.trigger.Store(triggerTrailing)

	if md.enabled {
		if atomic.LoadUint64(&md.invocations) == before {
			md.registry.DebounceSuppressed.WithLabelValues(md.name).Inc()
		}
		md.updatePending()
	}
}

// Cancel forwards to the wrapped debouncer and counts the operation.
func (md *MetricsDebouncer) Cancel() {
	md.debouncer.Cancel()

	if md.enabled {
		md.registry.DebounceCancels.WithLabelValues(md.name).Inc()
		md.updatePending()
	}
}

// Flush forwards to the wrapped debouncer, counting flushes that actually
// fired an invocation.
func (md *MetricsDebouncer) Flush() {
	before := atomic.LoadUint64(&md.invocations)
	md.trigger.Store(triggerFlush)
	md.debouncer.Flush()
	md.trigger.Store(triggerTrailing)

	if md.enabled {
		if atomic.LoadUint64(&md.invocations) != before {
			md.registry.DebounceFlushes.WithLabelValues(md.name).Inc()
		}
		md.updatePending()
	}
}

// Pending reports whether an invocation is currently scheduled.
func (md *MetricsDebouncer) Pending() bool {
	pending := md.debouncer.Pending()

	if md.enabled {
		md.setPending(pending)
	}

	return pending
}

// Wait returns the configured quiescence window.
func (md *MetricsDebouncer) Wait() time.Duration {
	return md.debouncer.Wait()
}

// Mode returns the configured mode.
func (md *MetricsDebouncer) Mode() Mode {
	return md.debouncer.Mode()
}

// EnableMetrics enables metrics collection.
func (md *MetricsDebouncer) EnableMetrics(config metrics.Config) error {
	md.enabled = config.Enabled

	if config.Registry != nil {
		md.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (md *MetricsDebouncer) DisableMetrics() {
	md.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (md *MetricsDebouncer) MetricsEnabled() bool {
	return md.enabled
}

func (md *MetricsDebouncer) updatePending() {
	md.setPending(md.debouncer.Pending())
}

func (md *MetricsDebouncer) setPending(pending bool) {
	v := 0.0
	if pending {
		v = 1.0
	}
	md.registry.DebouncePending.WithLabelValues(md.name).Set(v)
}
