// Package metrics holds the Prometheus collectors for toolrecd.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolrec_uploads_total",
			Help: "CAD file uploads by outcome",
		},
		[]string{"status"},
	)

	FeatureExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolrec_feature_extractions_total",
			Help: "Feature extraction runs by extractor and outcome",
		},
		[]string{"extractor", "status"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolrec_recommendations_total",
			Help: "Tool recommendations produced, by operation",
		},
		[]string{"operation"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "toolrec_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Outcome labels.
const (
	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)
