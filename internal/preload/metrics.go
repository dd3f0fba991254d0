package preload

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultLoaded      = "loaded"
	resultIdempotent  = "idempotent"
	resultConflict    = "conflict"
	resultNotFound    = "not_found"
	resultNotReadable = "not_readable"
	resultLoadFailed  = "load_failed"
)

var (
	preloadAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solverd",
			Subsystem: "preload",
			Name:      "attempts_total",
			Help:      "Total preload attempts by result",
		},
		[]string{"result"},
	)

	orderViolations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "solverd",
			Subsystem: "preload",
			Name:      "order_violations_total",
			Help:      "Import-order violations detected by the guard",
		},
	)
)

func init() {
	prometheus.MustRegister(preloadAttempts, orderViolations)
}

func recordPreload(result string) {
	preloadAttempts.WithLabelValues(result).Inc()
}

func recordOrderViolation() {
	orderViolations.Inc()
}
