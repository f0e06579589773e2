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

// Inventory Metrics
var (
	ItemsAdvanced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsAdvanced,
			Help: HelpTextItemsAdvanced,
		},
		[]string{LabelCategory},
	)

	ItemsExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsExpired,
			Help: HelpTextItemsExpired,
		},
		[]string{LabelCategory},
	)

	DaysSimulated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysSimulated,
			Help: HelpTextDaysSimulated,
		},
	)

	SimulationsRun = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSimulationsRun,
			Help: HelpTextSimulationsRun,
		},
	)
)
