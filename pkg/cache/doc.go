// Package cache provides a Redis-backed response cache for catalog API
// responses.
//
// The upstream API sends no Expires or ETag headers, so freshness is purely a
// client-side decision: every entry is stored with a TTL chosen by the caller
// and Redis evicts it when the TTL lapses. There is no conditional-request
// flow.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{
//		Addr: "localhost:6379",
//	})
//
//	manager := cache.NewManager(redisClient, 5*time.Minute)
//
//	key := cache.Key{
//		Endpoint:    "/anime",
//		QueryParams: map[string]string{"q": "monogatari", "limit": "10"},
//	}
//
//	entry, err := manager.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from the API, then manager.Set(ctx, key, entry)
//	}
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - mal_cache_hits_total - Cache hits
//   - mal_cache_misses_total - Cache misses
//   - mal_cache_size_bytes - Bytes written to the cache
//   - mal_cache_errors_total{operation} - Cache operation errors
package cache
