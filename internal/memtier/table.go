package memtier

import (
	"container/list"
	"sync"
	"time"
)

type node[T any] struct {
	key   string
	entry Entry[T]
}

// Table is the bounded in-process tier: a hashmap indexed into a recency
// list, front = most recently used. All methods are safe for concurrent use;
// insert-then-evict runs under a single critical section so the bound cannot
// be exceeded by a race.
type Table[T any] struct {
	mu         sync.RWMutex
	maxEntries int
	items      map[string]*list.Element
	lru        *list.List
}

func NewTable[T any](maxEntries int) *Table[T] {
	return &Table[T]{
		maxEntries: maxEntries,
		items:      make(map[string]*list.Element, maxEntries),
		lru:        list.New(),
	}
}

// Peek returns the entry without touching the recency list, expired or not.
// Callers decide liveness and call Touch on a hit.
func (t *Table[T]) Peek(key string) (Entry[T], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	el, ok := t.items[key]
	if !ok {
		return Entry[T]{}, false
	}
	return el.Value.(*node[T]).entry, true
}

// Touch moves the key to the most recent position.
func (t *Table[T]) Touch(key string) {
	t.mu.Lock()
	if el, ok := t.items[key]; ok {
		t.lru.MoveToFront(el)
	}
	t.mu.Unlock()
}

// Set inserts or replaces the entry under key and reports the key it had to
// evict, if any. A replace never evicts; an insert into a full table removes
// exactly one entry, the least recently used, before admitting the new one.
func (t *Table[T]) Set(key string, entry Entry[T]) (evictedKey string, evicted bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if el, ok := t.items[key]; ok {
		el.Value.(*node[T]).entry = entry
		t.lru.MoveToFront(el)
		return "", false
	}

	if t.maxEntries > 0 && t.lru.Len() >= t.maxEntries {
		evictedKey, evicted = t.popTailUnlocked()
	}

	t.items[key] = t.lru.PushFront(&node[T]{key: key, entry: entry})
	return evictedKey, evicted
}

// Del removes the key and reports whether it was present.
func (t *Table[T]) Del(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	el, ok := t.items[key]
	if !ok {
		return false
	}
	t.removeUnlocked(el)
	return true
}

func (t *Table[T]) Clear() {
	t.mu.Lock()
	t.items = make(map[string]*list.Element, t.maxEntries)
	t.lru.Init()
	t.mu.Unlock()
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lru.Len()
}

// PurgeExpired removes every entry whose validity window has elapsed at the
// given time and returns the number removed.
func (t *Table[T]) PurgeExpired(now time.Time) (removed int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for el := t.lru.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*node[T]).entry.Expired(now) {
			t.removeUnlocked(el)
			removed++
		}
		el = next
	}
	return removed
}

func (t *Table[T]) popTailUnlocked() (string, bool) {
	el := t.lru.Back()
	if el == nil {
		return "", false
	}
	key := el.Value.(*node[T]).key
	t.removeUnlocked(el)
	return key, true
}

func (t *Table[T]) removeUnlocked(el *list.Element) {
	delete(t.items, el.Value.(*node[T]).key)
	t.lru.Remove(el)
}
