package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the swap module
type Metrics struct {
	InstancesCreated prometheus.Counter
	InstantSwaps     prometheus.Counter
	LocksAcquired    prometheus.Counter
	LocksExecuted    prometheus.Counter
	LocksCancelled   prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// swapMetrics creates and registers swap metrics (singleton pattern)
func swapMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			InstancesCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "swap",
				Name:      "instances_created_total",
				Help:      "Total number of swap instances deployed",
			}),
			InstantSwaps: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "swap",
				Name:      "instant_swaps_total",
				Help:      "Total number of instant swaps executed",
			}),
			LocksAcquired: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "swap",
				Name:      "locks_acquired_total",
				Help:      "Total number of swap locks acquired",
			}),
			LocksExecuted: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "swap",
				Name:      "locks_executed_total",
				Help:      "Total number of swap locks executed",
			}),
			LocksCancelled: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "lockdex",
				Subsystem: "swap",
				Name:      "locks_cancelled_total",
				Help:      "Total number of swap locks cancelled",
			}),
		}
	})
	return metrics
}
