// Package cache provides an in-process cache for Enhetsregisteret lookups.
//
// Lookups by organization number are cached as raw responses (status code
// and body) so that a cached entry decodes exactly like a fresh one. Both
// hits and "not found"/"gone" answers are stored, the latter as negative
// entries. Nothing is persisted: the cache lives and dies with the process.
//
// # Basic Usage
//
//	manager := cache.NewManager(5 * time.Minute)
//
//	key := cache.Key{Endpoint: "/enheter/112233445"}
//
//	entry, err := manager.Get(key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from the registry, then
//		manager.Set(key, cache.NewEntry(resp.StatusCode, body))
//	}
//
// # Metrics
//
//   - brreg_lookup_cache_hits_total - Cache hits
//   - brreg_lookup_cache_misses_total - Cache misses
//   - brreg_lookup_cache_entries - Entries currently held
package cache
