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

// Randomizer Metrics
var (
	DecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecisionsTotal,
			Help: HelpTextDecisionsTotal,
		},
		[]string{LabelStrategy, LabelDecision},
	)

	InitializationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInitializationsTotal,
			Help: HelpTextInitializationsTotal,
		},
		[]string{LabelStrategy, LabelOutcome},
	)

	InitializeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameInitializeDuration,
			Help:    HelpTextInitializeDuration,
			Buckets: InitializeBuckets,
		},
		[]string{LabelStrategy},
	)

	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameQueueDepth,
			Help: HelpTextQueueDepth,
		},
		[]string{LabelStrategy},
	)
)

// Draw Metrics
var (
	DrawCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawCacheHits,
			Help: HelpTextDrawCacheHits,
		},
		[]string{LabelQuery},
	)

	DrawCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawCacheMisses,
			Help: HelpTextDrawCacheMisses,
		},
		[]string{LabelQuery},
	)

	DrawFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawFailures,
			Help: HelpTextDrawFailures,
		},
		[]string{LabelQuery},
	)
)
