package tiercache

import "github.com/benbjohnson/clock"

type options struct {
	store Store
	clock clock.Clock
}

type Option func(*options)

// WithStore injects a durable store, bypassing the configured backend.
// Useful for tests and for putting the cache in front of an existing store.
func WithStore(store Store) Option {
	return func(o *options) {
		if store != nil {
			o.store = store
		}
	}
}

// WithClock overrides the wall clock used for entry bookkeeping. Tests pass
// a mock clock to drive TTL expiry deterministically.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}
