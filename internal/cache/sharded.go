package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Must be a power of 2 for fast
	// modulo via bitwise AND.
	ShardCount = 16

	shardMask = ShardCount - 1
)

// Hasher computes a hash for a key. Used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Stats holds memo statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that ran the create function.
	Misses uint64
	// Failures is the number of create calls that returned an error.
	Failures uint64
	// HitRate is Hits / (Hits + Misses), 0 when there were no lookups.
	HitRate float64
}

// Sharded is a thread-safe, sharded, non-evicting memo.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*shard[K, V]
	hasher Hasher[K]

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates an empty memo. hasher selects the shard for a key.
func NewSharded[K comparable, V any](hasher Hasher[K]) *Sharded[K, V] {
	m := &Sharded[K, V]{hasher: hasher}
	for i := range m.shards {
		m.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return m
}

func (m *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return m.shards[m.hasher(key)&shardMask]
}

// GetOrCreate returns the value for key, creating it with create on first
// use. create runs with the shard lock held so it executes at most once per
// key among concurrent callers; keep it fast. If create fails the error is
// returned and nothing is stored.
func (m *Sharded[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	s := m.shardFor(key)

	// Fast path: read lock.
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		m.hits.Add(1)
		return v, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check after acquiring write lock.
	if v, ok := s.entries[key]; ok {
		m.hits.Add(1)
		return v, nil
	}

	m.misses.Add(1)
	v, err := create()
	if err != nil {
		m.failures.Add(1)
		var zero V
		return zero, err
	}
	s.entries[key] = v
	return v, nil
}

// Len returns the total number of entries across all shards.
func (m *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range m.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Clear removes all entries. Values already handed out stay valid and
// hit/miss counters are not reset.
func (m *Sharded[K, V]) Clear() {
	for _, s := range m.shards {
		s.mu.Lock()
		s.entries = make(map[K]V)
		s.mu.Unlock()
	}
}

// Stats returns current statistics.
func (m *Sharded[K, V]) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:      m.Len(),
		Hits:     hits,
		Misses:   misses,
		Failures: m.failures.Load(),
		HitRate:  hitRate,
	}
}
