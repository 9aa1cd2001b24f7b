package durable

import (
	"context"
	"time"
)

// NoOpStore backs memory-only configurations. Every read misses and every
// write vanishes.
type NoOpStore struct{}

func NewNoOpStore() NoOpStore { return NoOpStore{} }

// GetItem always reports an absent key.
func (NoOpStore) GetItem(_ context.Context, _ string) ([]byte, error) {
	return nil, ErrNotFound
}

// SetItem discards the value and returns nil.
func (NoOpStore) SetItem(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// RemoveItem does nothing and returns nil.
func (NoOpStore) RemoveItem(_ context.Context, _ string) error {
	return nil
}

// Close does nothing and returns nil.
func (NoOpStore) Close() error {
	return nil
}
