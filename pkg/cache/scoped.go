package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache, prefixing every key. Each data-source client gets a
// scoped view ("pdbe:", "uniprot:") so keys never collide across sources
// sharing one backend.
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped returns a view of inner with all keys prefixed.
func NewScoped(inner Cache, prefix string) *Scoped {
	return &Scoped{inner: inner, prefix: prefix}
}

func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the underlying backend. Callers sharing one backend across
// several scopes should close it once, at the outermost owner.
func (s *Scoped) Close() error { return s.inner.Close() }

var _ Cache = (*Scoped)(nil)
