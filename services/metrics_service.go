package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resolutionCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysconf_resolutions_total",
			Help: "Total configuration resolutions by profile and outcome",
		},
		[]string{"profile", "outcome"},
	)

	validationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysconf_validation_failures_total",
			Help: "Validation failures by error kind",
		},
		[]string{"kind"},
	)

	resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysconf_resolve_duration_seconds",
			Help:    "Duration of configuration resolutions",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"profile"},
	)

	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysconf_http_requests_total",
			Help: "Total HTTP requests by route",
		},
		[]string{"route"},
	)

	requestErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysconf_http_request_errors_total",
			Help: "HTTP requests answered with status >= 400, by route",
		},
		[]string{"route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysconf_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(resolutionCount)
	prometheus.MustRegister(validationFailures)
	prometheus.MustRegister(resolveDuration)
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestErrors)
	prometheus.MustRegister(requestDuration)
}

/**
 * Record one resolution attempt
 * @param {string} profile - Profile selector
 * @param {string} outcome - ok/invalid/unknown_profile
 * @param {float64} seconds - Wall time the pipeline took
 */
func RecordResolution(profile, outcome string, seconds float64) {
	resolutionCount.WithLabelValues(profile, outcome).Inc()
	resolveDuration.WithLabelValues(profile).Observe(seconds)
}

/**
 * Record one validation failure by kind
 */
func RecordValidationFailure(kind string) {
	validationFailures.WithLabelValues(kind).Inc()
}

/**
 * Increment the request counter for a route
 */
func IncrementRequestCount(route string) {
	requestCount.WithLabelValues(route).Inc()
}

/**
 * Increment the error counter for a route
 */
func IncrementErrorCount(route string) {
	requestErrors.WithLabelValues(route).Inc()
}

/**
 * Record how long a request took
 */
func RecordRequestDuration(route string, seconds float64) {
	requestDuration.WithLabelValues(route).Observe(seconds)
}
