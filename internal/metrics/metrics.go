package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Upstream Metrics
var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequestsTotal,
			Help: HelpTextUpstreamRequestsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameUpstreamRequestDuration,
			Help:    HelpTextUpstreamRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelOperation},
	)
)

// Engine Metrics
var (
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheRequestsTotal,
			Help: HelpTextCacheRequestsTotal,
		},
		[]string{LabelFamily, LabelResult},
	)

	LevelsComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLevelsComputed,
			Help: HelpTextLevelsComputed,
		},
		[]string{LabelLevel},
	)
)

// UpstreamOutcome maps an HTTP status code (0 for transport failures) to an outcome label
func UpstreamOutcome(status int) string {
	switch {
	case status == 0:
		return OutcomeTransport
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	default:
		return OutcomeSuccess
	}
}
