package cache

import "context"

// Store is a TTL cache over serialized values. Failures are swallowed by
// implementations: a cache miss and a cache outage look the same to callers.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	Delete(ctx context.Context, key string)
}
