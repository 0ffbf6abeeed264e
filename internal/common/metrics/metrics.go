package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_search_requests_total",
			Help: "Total number of presence search requests by outcome",
		},
		[]string{"outcome"},
	)

	SearchRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "presence_search_request_duration_seconds",
			Help: "Duration of presence search request handling in seconds",
		},
		[]string{"source"},
	)

	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_provider_requests_total",
			Help: "Total number of outbound search provider calls by status",
		},
		[]string{"status"},
	)

	CacheOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "presence_result_cache_ops_total",
			Help: "Search result cache operations by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)
