package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_api_requests_total",
		Help: "Total number of outgoing API requests",
	}, []string{"method", "path", "status"})

	APIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_api_request_duration_seconds",
		Help:    "Latency of outgoing API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	CacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cache_hits_total",
		Help: "Remote-result cache hits served without a network call",
	}, []string{"resource"})

	CacheMissesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cache_misses_total",
		Help: "Remote-result cache misses or stale entries forcing a fetch",
	}, []string{"resource"})

	StoreSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_store_sync_total",
		Help: "Successful projections of remote results into the local store",
	}, []string{"slice"})

	StaleResponsesDiscarded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_stale_responses_discarded_total",
		Help: "Out-of-order resolutions discarded by latest-wins sequencing",
	}, []string{"key"})

	OptimisticRollbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_optimistic_rollbacks_total",
		Help: "Optimistic merges rolled back after a failed mutation",
	}, []string{"slice"})

	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_mutations_total",
		Help: "Resource mutations by outcome",
	}, []string{"resource", "outcome"})
)
