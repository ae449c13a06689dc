// Package metrics holds the Prometheus collectors. The engine records
// aggregate counts and timings only; nothing here carries person data.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	screeningsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "screenings_total",
			Help: "Total number of entitlement screenings resolved",
		},
	)

	screeningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "screening_duration_seconds",
			Help:    "Screening resolution duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	eligibleSchemes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "screening_eligible_schemes",
			Help:    "Number of eligible schemes per screening",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 12, 16, 20},
		},
	)

	valuationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_requests_total",
			Help: "Total number of external valuation calls by outcome",
		},
		[]string{"outcome"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "status"},
	)
)

// ScreeningResolved records one completed resolution.
func ScreeningResolved(duration time.Duration, eligible int) {
	screeningsTotal.Inc()
	screeningDuration.Observe(duration.Seconds())
	eligibleSchemes.Observe(float64(eligible))
}

// ValuationRequest records one external valuation attempt.
func ValuationRequest(outcome string) {
	valuationRequests.WithLabelValues(outcome).Inc()
}

// HTTPRequest records one served request.
func HTTPRequest(path string, status int) {
	httpRequestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
}
