package cache

import "sync"

// Store is an in-process key/value memo with no TTL and no eviction; entries
// live for the process lifetime unless explicitly invalidated.
//
// A provisional entry is a fallback that was cached in place of a confirmed
// result (e.g. placeholder images after a failed storage listing). Lookups
// report it separately so callers can retry resolution instead of trusting
// it forever, and any later confirmed Set silently replaces it.
type Store[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
}

type entry[V any] struct {
	value       V
	provisional bool
}

func NewStore[V any]() *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value, whether the key was present, and whether the
// entry is provisional.
func (s *Store[V]) Get(key string) (V, bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false, false
	}
	return e.value, true, e.provisional
}

// Set stores a confirmed value, replacing any provisional entry.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value}
}

// SetProvisional stores a fallback value that later lookups must not trust
// as resolved.
func (s *Store[V]) SetProvisional(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry[V]{value: value, provisional: true}
}

func (s *Store[V]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *Store[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]entry[V])
}

func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
