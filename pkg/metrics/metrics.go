// Package metrics exposes Prometheus collectors for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pet_world"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	contractCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contracts",
			Name:      "calls_total",
			Help:      "Contract reads and writes by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	contractDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "contracts",
			Name:      "call_duration_seconds",
			Help:      "Duration of contract calls, including confirmation waits for writes.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14), // 10ms to ~80s
		},
		[]string{"method"},
	)

	storeFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "fetches_total",
			Help:      "Aggregate fetches by key kind and outcome (applied, discarded, failed).",
		},
		[]string{"aggregate", "outcome"},
	)

	reconcileTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "poll_ticks_total",
			Help:      "Balance polling ticks.",
		},
	)

	ledgerEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reconciler",
			Name:      "events_total",
			Help:      "Ledger notifications received for the session account.",
		},
		[]string{"type"},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "1 while a wallet session is connected.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		contractCalls,
		contractDuration,
		storeFetches,
		reconcileTicks,
		ledgerEvents,
		activeSessions,
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveContractCall records one contract call.
func ObserveContractCall(method, outcome string, d time.Duration) {
	contractCalls.WithLabelValues(method, outcome).Inc()
	contractDuration.WithLabelValues(method).Observe(d.Seconds())
}

// ObserveFetch records an aggregate fetch outcome.
func ObserveFetch(aggregate, outcome string) {
	storeFetches.WithLabelValues(aggregate, outcome).Inc()
}

// ObservePollTick counts one reconciler polling tick.
func ObservePollTick() {
	reconcileTicks.Inc()
}

// ObserveLedgerEvent counts a received ledger event.
func ObserveLedgerEvent(eventType string) {
	ledgerEvents.WithLabelValues(eventType).Inc()
}

// SetSessionActive flips the active-session gauge.
func SetSessionActive(active bool) {
	if active {
		activeSessions.Set(1)
		return
	}
	activeSessions.Set(0)
}
