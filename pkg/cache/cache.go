// Package cache provides pluggable caching of API responses.
//
// Three backends are available:
//   - [FileCache]: entries on disk, for CLI usage (the default)
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op, for tests or --no-cache runs
//
// Keys are namespaced per data source ("pdbe:", "uniprot:", ...) via
// [Scoped] so clients never collide. Entries carry a TTL; expired entries
// read as misses.
package cache

import (
	"context"
	"time"
)

// Cache is the backend interface for response caching.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss or
// expired entry, and a non-nil error only for backend failures. Callers
// treat errors as misses; caching is best-effort.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
