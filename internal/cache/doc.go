// Package cache provides the sharded memo behind vertexlayout.Cache.
//
// # Sharded[K, V]
//
// A thread-safe map split across 16 shards to reduce lock contention.
// Entries are never evicted: a value is created once per key and shared
// for the life of the memo.
//
//	m := cache.NewSharded[string, int](cache.StringHasher)
//	v, err := m.GetOrCreate("key", func() (int, error) { return 42, nil })
//
// Creation errors are returned to the caller and not stored, so a later
// call with the same key runs the create function again.
//
// # Thread Safety
//
// Sharded is safe for concurrent use and must not be copied after creation.
package cache
