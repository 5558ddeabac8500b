package hashmap

import (
	"sync"
)

// SyncChainedHashMap guards a ChainedHashMap with a single sync.RWMutex.
//
// Every method that modifies the map, including Resize, holds the write lock for its whole duration,
// so no caller can observe a partially rehashed table.
type SyncChainedHashMap[V any] struct {
	backend *ChainedHashMap[V]

	mu sync.RWMutex
}

func NewSyncChainedHashMap[V any](capacity int, hasher Hasher) (*SyncChainedHashMap[V], error) {
	backend, err := NewChainedHashMap[V](capacity, hasher)
	if err != nil {
		return nil, err
	}

	return &SyncChainedHashMap[V]{
		backend: backend,
	}, nil
}

func (m *SyncChainedHashMap[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.Get(key)
}

func (m *SyncChainedHashMap[V]) Put(key string, val V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.backend.Put(key, val)
}

// Update atomically replaces the value stored under key with fn(current, exists).
// The write lock is held while fn runs, so fn must not call back into the map or it will deadlock.
func (m *SyncChainedHashMap[V]) Update(key string, fn func(current V, exists bool) V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, exists := m.backend.Get(key)
	updated := fn(current, exists)
	m.backend.Put(key, updated)
	return updated
}

func (m *SyncChainedHashMap[V]) Remove(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.backend.Remove(key)
}

func (m *SyncChainedHashMap[V]) ContainsKey(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.ContainsKey(key)
}

func (m *SyncChainedHashMap[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.backend.Clear()
}

func (m *SyncChainedHashMap[V]) Resize(newCapacity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.backend.Resize(newCapacity)
}

func (m *SyncChainedHashMap[V]) EmptyBuckets() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.EmptyBuckets()
}

func (m *SyncChainedHashMap[V]) TableLoad() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.TableLoad()
}

func (m *SyncChainedHashMap[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.Len()
}

func (m *SyncChainedHashMap[V]) Capacity() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.Capacity()
}

// Range iterates over a snapshot of the map taken under the read lock.
// The lock is not held while cb runs, so cb may call back into the map.
func (m *SyncChainedHashMap[V]) Range(cb func(string, V) bool) {
	m.mu.RLock()
	kvs := m.backend.Entries()
	m.mu.RUnlock()

	for _, kv := range kvs {
		if !cb(kv.Key, kv.Value) {
			return
		}
	}
}

func (m *SyncChainedHashMap[V]) Stats() TableStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.Stats()
}

func (m *SyncChainedHashMap[V]) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.backend.String()
}
