package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the router module
type Metrics struct {
	RoutesStarted   prometheus.Counter
	RoutesCompleted prometheus.Counter
	RoutesAborted   prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// routerMetrics creates and registers router metrics (singleton pattern)
func routerMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			RoutesStarted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "router",
				Name:      "routes_started_total",
				Help:      "Total number of route swaps started",
			}),
			RoutesCompleted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "router",
				Name:      "routes_completed_total",
				Help:      "Total number of route swaps settled",
			}),
			RoutesAborted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "router",
				Name:      "routes_aborted_total",
				Help:      "Total number of route swaps aborted during lock acquisition",
			}),
		}
	})
	return metrics
}
