package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Upstream metric names
const (
	MetricNameUpstreamRequestsTotal   = "upstream_requests_total"
	MetricNameUpstreamRequestDuration = "upstream_request_duration_seconds"
)

// Engine metric names
const (
	MetricNameCacheRequestsTotal = "cache_requests_total"
	MetricNameLevelsComputed     = "achievement_levels_computed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal       = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration     = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight    = "Current number of HTTP requests being served"
	HelpTextUpstreamRequestsTotal   = "Total number of upstream users API request attempts"
	HelpTextUpstreamRequestDuration = "Upstream users API request latency in seconds"
	HelpTextCacheRequestsTotal      = "Total number of result cache lookups"
	HelpTextLevelsComputed          = "Total number of achievement levels computed from upstream data"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelFamily    = "family"
	LabelResult    = "result"
	LabelLevel     = "level"
)

// Upstream outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeClientError = "client_error"
	OutcomeServerError = "server_error"
	OutcomeTransport   = "transport_error"
)

// Cache lookup results
const (
	CacheResultHit  = "hit"
	CacheResultMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
