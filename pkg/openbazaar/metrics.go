package openbazaar

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openbazaar_client",
			Name:      "requests_total",
			Help:      "Requests issued to the daemon by operation and response code.",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openbazaar_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency of daemon requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observeRequest(op string, status int, transportErr error, elapsed time.Duration) {
	code := "transport_error"
	if transportErr == nil {
		code = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(op, code).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}
