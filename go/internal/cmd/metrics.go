package main

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ligaveteranos_http_request_duration_seconds",
	Help:    "Latency of gateway requests by route pattern",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

func observeRequest(method, route string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(seconds)
}
