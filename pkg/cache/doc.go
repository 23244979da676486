// Package cache provides an optional Redis-backed cache for catalog responses.
//
// Catalog documents change rarely, so repeated runs can serve the 152 requests
// of a batch build from Redis instead of the network. The cache is opt-in: when
// no Redis URL is configured the client talks to the catalog directly.
//
// # Basic Usage
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager := cache.NewManager(redisClient)
//
//	key := cache.Key{Endpoint: "/api/v2/pokemon/pikachu"}
//	entry, err := manager.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from the catalog, then:
//		entry, _ = cache.ResponseToEntry(resp, 24*time.Hour)
//		_ = manager.Set(ctx, key, entry)
//	}
//
// # TTL
//
// The entry lifetime comes from the response's Cache-Control max-age, then
// its Expires header, then the fallback TTL passed to ResponseToEntry.
//
// # Metrics
//
//   - pokeapi_cache_hits_total - Cache hits
//   - pokeapi_cache_misses_total - Cache misses
//   - pokeapi_cache_size_bytes - Bytes written to the cache
//   - pokeapi_cache_errors_total{operation} - Cache operation errors
package cache
