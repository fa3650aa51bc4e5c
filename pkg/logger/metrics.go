package logger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics shared by the API service and the analysis layer.

var (
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	AnalysesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total number of completed analysis passes",
		},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "analysis_duration_seconds",
			Help: "Duration of a full analysis pass in seconds",
		},
	)

	InsufficientDataTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insufficient_data_total",
			Help: "Indicator computations skipped because the series was too short",
		},
		[]string{"indicator"},
	)
)
