// Package metrics provides Prometheus instrumentation for godebounce components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for godebounce components.
type Registry struct {
	// Debounce Metrics
	DebounceCalls       *prometheus.CounterVec
	DebounceInvocations *prometheus.CounterVec
	DebounceSuppressed  *prometheus.CounterVec
	DebounceCancels     *prometheus.CounterVec
	DebounceFlushes     *prometheus.CounterVec
	DebouncePending     *prometheus.GaugeVec
	DebounceWait        *prometheus.GaugeVec
}

// DefaultRegistry is the default metrics registry used by godebounce components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		DebounceCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "calls_total",
				Help:      "Total number of calls made to the debounced function",
			},
			[]string{"debouncer_name"},
		),

		DebounceInvocations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "invocations_total",
				Help:      "Total number of target invocations, by trigger edge",
			},
			[]string{"trigger", "debouncer_name"},
		),

		DebounceSuppressed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "suppressed_total",
				Help:      "Total number of calls absorbed without an immediate invocation",
			},
			[]string{"debouncer_name"},
		),

		DebounceCancels: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "cancels_total",
				Help:      "Total number of Cancel operations",
			},
			[]string{"debouncer_name"},
		),

		DebounceFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "flushes_total",
				Help:      "Total number of Flush operations that fired a pending invocation",
			},
			[]string{"debouncer_name"},
		),

		DebouncePending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "pending",
				Help:      "Whether a trailing invocation is currently pending (0 or 1)",
			},
			[]string{"debouncer_name"},
		),

		DebounceWait: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "godebounce",
				Subsystem: "debounce",
				Name:      "wait_seconds",
				Help:      "Configured quiescence window in seconds",
			},
			[]string{"debouncer_name"},
		),
	}
}
