// Package metrics provides Prometheus instrumentation for godebounce components.
//
// This package enables monitoring and observability for debounced functions
// through Prometheus metrics.
//
// # Overview
//
// The metrics package provides automatic instrumentation for:
//   - Call traffic (calls, suppressed calls)
//   - Target invocations by trigger edge (leading, trailing, flush)
//   - Control operations (cancels, flushes)
//   - Pending state and configured wait window
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	// Debouncer with metrics
//	d := debounce.NewWithMetrics(target, 250*time.Millisecond, debounce.Trailing, "search_query")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	d := debounce.NewWithConfigAndMetrics(
//		target,
//		debounce.Config{Wait: 250 * time.Millisecond, Mode: debounce.Both},
//		"search_query",
//		config,
//	)
//
// # Available Metrics
//
//   - godebounce_debounce_calls_total: Total number of calls made to the debounced function
//   - godebounce_debounce_invocations_total: Total number of target invocations, by trigger edge
//   - godebounce_debounce_suppressed_total: Total number of calls absorbed without an immediate invocation
//   - godebounce_debounce_cancels_total: Total number of Cancel operations
//   - godebounce_debounce_flushes_total: Total number of Flush operations that fired a pending invocation
//   - godebounce_debounce_pending: Whether a trailing invocation is currently pending (0 or 1)
//   - godebounce_debounce_wait_seconds: Configured quiescence window in seconds
//
// # Labels
//
// Metrics include relevant labels for filtering and aggregation:
//
//   - debouncer_name: User-provided name for the debouncer instance
//   - trigger: The edge that fired the invocation ("leading", "trailing", or "flush")
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	d := debounce.NewWithMetrics(target, wait, debounce.Trailing, "api")
//	d.DisableMetrics()           // Stop collecting metrics
//	d.EnableMetrics(config)      // Re-enable with new config
//	enabled := d.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
