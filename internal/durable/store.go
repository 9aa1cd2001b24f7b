package durable

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound signals an absent key. Every other error a Store returns is a
// durable-tier fault and is swallowed at the cache boundary.
var ErrNotFound = errors.New("durable: key not found")

// Store is the persistent tier collaborator: an opaque blob store keyed by
// string. Implementations own serialization of their transport, retries and
// persistence guarantees. The ttl passed to SetItem is a retention hint only;
// expiry is always enforced by the cache's own bookkeeping, and a backend is
// free to ignore it.
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte, ttl time.Duration) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}
