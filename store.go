package tiercache

import (
	"context"
	"time"

	"github.com/nithin434/go-tier-cache/internal/durable"
)

// ErrNotFound is the sentinel a durable store returns for an absent key.
// Custom Store implementations must return it (wrapped or not) so the cache
// can tell absence from a fault worth logging.
var ErrNotFound = durable.ErrNotFound

// Store is the durable key-value collaborator: an opaque blob store keyed by
// string. The ttl passed to SetItem is a retention hint only; expiry is
// enforced by the cache's own bookkeeping, and a backend is free to ignore
// it. Any error other than ErrNotFound is treated as a best-effort fault and
// never reaches the caller.
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte, ttl time.Duration) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}
