// Package metrics provides the centralized Prometheus metrics registry for
// the catalog API client. All metrics are defined in their respective
// packages (client, cache, pacer) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the client.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Pacer Metrics (pkg/pacer):
//   - mal_pacer_waits_total (Counter): Requests that had to wait for a slot
//   - mal_pacer_wait_seconds (Histogram): Time spent waiting for a slot
//
// Cache Metrics (pkg/cache):
//   - mal_cache_hits_total (Counter): Response cache hits
//   - mal_cache_misses_total (Counter): Response cache misses
//   - mal_cache_size_bytes (Counter): Bytes written to the response cache
//   - mal_cache_errors_total{operation} (Counter): Cache operation errors
//
// Request Metrics (pkg/client):
//   - mal_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - mal_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - mal_errors_total{class} (Counter): Errors by class (client, server, network)
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   rate(mal_cache_hits_total[5m]) /
//   (rate(mal_cache_hits_total[5m]) + rate(mal_cache_misses_total[5m]))
//
//   # Request Error Rate
//   rate(mal_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(mal_request_duration_seconds_bucket[5m]))
//
//   # Share of requests delayed by the pacer
//   rate(mal_pacer_waits_total[5m]) / rate(mal_requests_total[5m])
