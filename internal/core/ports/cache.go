package ports

import "time"

// Cache is a type-erased, concurrency-safe key-value store used to memoize
// resolved currencies, rates, and conversion results. Callers own the
// key-to-shape contract: a key pattern is always written and read with the
// same value shape. Use cache.TypedGet to read back a concrete type.
type Cache interface {
	// Put stores value under key with no expiry, overwriting any prior entry.
	Put(key string, value any)

	// PutTTL stores value under key with a bounded lifetime. A non-positive
	// ttl behaves like Put.
	PutTTL(key string, value any, ttl time.Duration)

	// Get returns the stored value, or false on unknown or expired key.
	Get(key string) (any, bool)

	// Remove deletes a single key if present.
	Remove(key string)

	// Clear removes all entries unconditionally.
	Clear()
}
