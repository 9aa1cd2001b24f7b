package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/nithin434/go-tier-cache/internal/durable"
)

// Store keeps one blob file per key under a single directory. File names are
// derived from the 128-bit xxh3 hash of the key, so arbitrary key strings
// never reach the filesystem. TTL is not enforced here; stale files are
// rejected by the cache's own expiry bookkeeping and overwritten in place.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) GetItem(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, durable.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob for %q: %w", key, err)
	}
	return blob, nil
}

func (s *Store) SetItem(ctx context.Context, key string, value []byte, _ time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("write blob for %q: %w", key, err)
	}
	// rename keeps a concurrent reader from observing a half-written blob
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("publish blob for %q: %w", key, err)
	}
	return nil
}

func (s *Store) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob for %q: %w", key, err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	sum := xxh3.Hash128([]byte(key))
	return filepath.Join(s.dir, fmt.Sprintf("%016x%016x.json", sum.Hi, sum.Lo))
}
