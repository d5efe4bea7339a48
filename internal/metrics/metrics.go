package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PaymentsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_recorded_total",
			Help: "Payment records appended to the ledger",
		},
	)

	PaymentsReversed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_reversed_total",
			Help: "Compensating reversal records appended to the ledger",
		},
	)

	OverdueProperties = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rent_overdue_properties",
			Help: "Occupied properties whose current rent cycle is overdue",
		},
	)
)
