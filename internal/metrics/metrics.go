package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reviewhub",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of requests sent to the reviews API.",
		},
		[]string{"method", "path", "status"},
	)

	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reviewhub",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duration of requests sent to the reviews API.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	storeLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reviewhub",
			Subsystem: "store",
			Name:      "loads_total",
			Help:      "Review list loads by outcome.",
		},
		[]string{"outcome"},
	)

	storeLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reviewhub",
			Subsystem: "store",
			Name:      "load_duration_seconds",
			Help:      "Duration of review list loads.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
	)

	cachedReviews = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "reviewhub",
			Subsystem: "store",
			Name:      "cached_reviews",
			Help:      "Number of reviews currently held by the store.",
		},
	)
)

func init() {
	Registry.MustRegister(apiRequests, apiDuration, storeLoads, storeLoadDuration, cachedReviews)
}

// ObserveAPIRequest records one outgoing request. A zero status means the
// request never produced a response.
func ObserveAPIRequest(method, path string, status int, d time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	apiRequests.WithLabelValues(method, path, label).Inc()
	apiDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Load outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeStale   = "stale"
)

func ObserveStoreLoad(outcome string, d time.Duration) {
	storeLoads.WithLabelValues(outcome).Inc()
	storeLoadDuration.Observe(d.Seconds())
}

func SetCachedReviews(n int) {
	cachedReviews.Set(float64(n))
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
