package memtier

import "time"

// Entry is one cached value together with the bookkeeping that governs its
// validity. WrittenAt is set once at insertion and never mutated; promotion
// from the durable tier carries the original WrittenAt over, so expiry is
// always judged against the moment the value was produced.
type Entry[T any] struct {
	Data      T
	WrittenAt time.Time
	TTL       time.Duration
}

// Expired reports whether the entry's validity window [WrittenAt,
// WrittenAt+TTL) has elapsed at the given time. A non-positive TTL means the
// entry never expires.
func (e Entry[T]) Expired(now time.Time) bool {
	if e.TTL <= 0 {
		return false
	}
	return now.Sub(e.WrittenAt) >= e.TTL
}
