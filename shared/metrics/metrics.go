package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultAccepted   = "accepted"
	ResultInvalid    = "invalid"
	ResultDateWindow = "date_window"
	ResultFailed     = "failed"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryform_submissions_total",
		Help: "Booking submissions by outcome.",
	},
		[]string{"result"},
	)

	NotificationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryform_notification_errors_total",
		Help: "Confirmations that could not be dispatched, by driver.",
	},
		[]string{"driver"},
	)

	LedgerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "deliveryform_ledger_errors_total",
		Help: "Failed ledger operations.",
	},
		[]string{"operation"},
	)

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deliveryform_rate_limited_total",
		Help: "Requests rejected by the rate limiter.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "deliveryform_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "status"},
	)
)
