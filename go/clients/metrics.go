package clients

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ligaveteranos_upstream_request_duration_seconds",
	Help:    "Latency of calls to the league API",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "status"})

// statusLabel is the response code, or "error" when no response arrived.
func statusLabel(code int) string {
	if code == 0 {
		return "error"
	}
	return strconv.Itoa(code)
}
