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

// Randomizer metric names
const (
	MetricNameDecisionsTotal       = "randomizer_decisions_total"
	MetricNameInitializationsTotal = "randomizer_initializations_total"
	MetricNameInitializeDuration   = "randomizer_initialize_duration_seconds"
	MetricNameQueueDepth           = "randomizer_world_queue_depth"
)

// Draw layer metric names
const (
	MetricNameDrawCacheHits   = "draw_cache_hits_total"
	MetricNameDrawCacheMisses = "draw_cache_misses_total"
	MetricNameDrawFailures    = "draw_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Randomizer metric help text
const (
	HelpTextDecisionsTotal       = "Total number of randomize decisions by strategy and decision kind"
	HelpTextInitializationsTotal = "Total number of strategy initializations by strategy and outcome"
	HelpTextInitializeDuration   = "Strategy initialization latency in seconds"
	HelpTextQueueDepth           = "Replacement identifiers left in a world strategy queue"
)

// Draw layer help text
const (
	HelpTextDrawCacheHits   = "Total number of draw cache hits by query kind"
	HelpTextDrawCacheMisses = "Total number of draw cache misses by query kind"
	HelpTextDrawFailures    = "Total number of draws that failed for lack of candidates"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelStrategy = "strategy"
	LabelDecision = "decision"
	LabelOutcome  = "outcome"
	LabelQuery    = "query"
)

// Initialization outcomes
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// InitializeBuckets covers pool construction, which is bounded by a few hundred slots.
var InitializeBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}
