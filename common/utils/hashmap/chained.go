package hashmap

import (
	"fmt"
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/Scusemua/go-utils/logger"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/scusemua/chainmap/common/utils"
)

// TableStats is a point-in-time summary of the layout of a ChainedHashMap.
type TableStats struct {
	Size         int             `json:"size"`
	Capacity     int             `json:"capacity"`
	EmptyBuckets int             `json:"empty_buckets"`
	LongestChain int             `json:"longest_chain"`
	LoadFactor   decimal.Decimal `json:"load_factor"`
}

func (s TableStats) String() string {
	return fmt.Sprintf("TableStats[Size=%d, Capacity=%d, EmptyBuckets=%d, LongestChain=%d, LoadFactor=%s]",
		s.Size, s.Capacity, s.EmptyBuckets, s.LongestChain, s.LoadFactor.StringFixed(4))
}

// ChainedHashMap is a hash table that resolves collisions by chaining entries within each bucket.
//
// The number of buckets only changes when Resize is called. ChainedHashMap is not safe for concurrent use;
// see SyncChainedHashMap.
//
// Every entry with key k lives in the bucket at index hasher.Hash(k) % capacity for the current capacity.
type ChainedHashMap[V any] struct {
	buckets  []*Chain[V]
	capacity int
	size     int
	hasher   Hasher

	// modCount is incremented by every structural modification so that Range can detect them.
	modCount uint64

	log logger.Logger
}

// NewChainedHashMap creates a new ChainedHashMap with the specified number of buckets and the specified Hasher.
//
// NewChainedHashMap returns ErrInvalidCapacity if capacity is not positive and ErrNilHasher if hasher is nil.
func NewChainedHashMap[V any](capacity int, hasher Hasher) (*ChainedHashMap[V], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "cannot create hash map with capacity %d", capacity)
	}

	if hasher == nil {
		return nil, ErrNilHasher
	}

	m := &ChainedHashMap[V]{
		buckets:  newBuckets[V](capacity),
		capacity: capacity,
		hasher:   hasher,
	}

	config.InitLogger(&m.log, m)

	return m, nil
}

// MustNewChainedHashMap is like NewChainedHashMap, but it panics if the arguments are invalid.
func MustNewChainedHashMap[V any](capacity int, hasher Hasher) *ChainedHashMap[V] {
	m, err := NewChainedHashMap[V](capacity, hasher)
	if err != nil {
		panic(err)
	}

	return m
}

func newBuckets[V any](capacity int) []*Chain[V] {
	buckets := make([]*Chain[V], capacity)
	for i := range buckets {
		buckets[i] = NewChain[V]()
	}
	return buckets
}

// bucket returns the Chain in which the given key belongs.
func (m *ChainedHashMap[V]) bucket(key string) *Chain[V] {
	return m.buckets[m.hasher.Hash(key)%uint64(m.capacity)]
}

// Get returns the value associated with the given key.
//
// If the key is not present, then Get returns the zero value of V and false.
func (m *ChainedHashMap[V]) Get(key string) (V, bool) {
	entry := m.bucket(key).Find(key)
	if entry == nil {
		var zero V
		return zero, false
	}

	return entry.Value, true
}

// Put associates the given value with the given key.
//
// If the key is already present, then its value is overwritten in place and the size of the map does not change.
func (m *ChainedHashMap[V]) Put(key string, value V) {
	bucket := m.bucket(key)
	if entry := bucket.Find(key); entry != nil {
		entry.Value = value
		return
	}

	bucket.AddFront(key, value)
	m.size += 1
	m.modCount += 1
}

// Remove removes the given key from the map. Removing a key that is not present is a no-op.
//
// Remove returns true if the key was present.
func (m *ChainedHashMap[V]) Remove(key string) bool {
	if !m.bucket(key).Remove(key) {
		return false
	}

	m.size -= 1
	m.modCount += 1
	return true
}

// ContainsKey returns true if the given key is present in the map.
func (m *ChainedHashMap[V]) ContainsKey(key string) bool {
	return m.bucket(key).Find(key) != nil
}

// Clear removes every entry from the map. The capacity is unchanged.
func (m *ChainedHashMap[V]) Clear() {
	for _, bucket := range m.buckets {
		bucket.Clear()
	}

	m.log.Debug("Cleared %d entries from %d buckets.", m.size, m.capacity)

	m.size = 0
	m.modCount += 1
}

// Resize changes the number of buckets to newCapacity and rehashes every entry into the new buckets.
//
// Keys, values and size are preserved; only the placement of the entries changes. If newCapacity is
// not positive, then Resize returns ErrInvalidCapacity and the map is left untouched.
func (m *ChainedHashMap[V]) Resize(newCapacity int) error {
	if newCapacity <= 0 {
		return errors.Wrapf(ErrInvalidCapacity, "cannot resize hash map from %d to %d buckets", m.capacity, newCapacity)
	}

	buckets := newBuckets[V](newCapacity)
	for _, bucket := range m.buckets {
		for cur := bucket.head; cur != nil; cur = cur.next {
			idx := m.hasher.Hash(cur.key) % uint64(newCapacity)
			buckets[idx].AddFront(cur.key, cur.Value)
		}
	}

	m.log.Debug("Resized from %d to %d buckets. Rehashed %d entries.", m.capacity, newCapacity, m.size)

	m.buckets, m.capacity = buckets, newCapacity
	m.modCount += 1
	return nil
}

// EmptyBuckets returns the number of buckets that currently hold no entries.
func (m *ChainedHashMap[V]) EmptyBuckets() int {
	empty := 0
	for _, bucket := range m.buckets {
		if bucket.Len() == 0 {
			empty += 1
		}
	}
	return empty
}

// TableLoad returns the load factor of the map: the number of entries divided by the number of buckets.
func (m *ChainedHashMap[V]) TableLoad() float64 {
	if m.capacity <= 0 {
		panic(fmt.Sprintf("ChainedHashMap has invalid capacity %d", m.capacity))
	}

	return float64(m.size) / float64(m.capacity)
}

// Len returns the number of entries in the map.
func (m *ChainedHashMap[V]) Len() int {
	return m.size
}

// Capacity returns the number of buckets.
func (m *ChainedHashMap[V]) Capacity() int {
	return m.capacity
}

// Range calls cb for every key/value pair in bucket order. If cb returns false, iteration stops.
//
// cb must not add keys to, remove keys from, clear, or resize the map. Doing so causes Range to panic
// with ErrModifiedDuringRange. Use RangeSafe when the callback needs to modify the map.
func (m *ChainedHashMap[V]) Range(cb func(string, V) bool) {
	expected := m.modCount
	for _, bucket := range m.buckets {
		for cur := bucket.head; cur != nil; cur = cur.next {
			contd := cb(cur.key, cur.Value)
			if m.modCount != expected {
				panic(ErrModifiedDuringRange)
			}
			if !contd {
				return
			}
		}
	}
}

// RangeSafe is like Range, but it first copies every key/value pair out of the map.
//
// The callback therefore observes the map as it was when RangeSafe was called and may modify the map freely.
func (m *ChainedHashMap[V]) RangeSafe(cb func(string, V) bool) {
	for _, kv := range m.Entries() {
		if !cb(kv.Key, kv.Value) {
			return
		}
	}
}

// Entries returns a copy of every key/value pair in the map, in bucket order.
func (m *ChainedHashMap[V]) Entries() []KeyValue[V] {
	kvs := make([]KeyValue[V], 0, m.size)
	for _, bucket := range m.buckets {
		bucket.Range(func(key string, value V) bool {
			kvs = append(kvs, KeyValue[V]{Key: key, Value: value})
			return true
		})
	}
	return kvs
}

// Stats returns a summary of the current layout of the map.
func (m *ChainedHashMap[V]) Stats() TableStats {
	stats := TableStats{
		Size:       m.size,
		Capacity:   m.capacity,
		LoadFactor: decimal.NewFromInt(int64(m.size)).Div(decimal.NewFromInt(int64(m.capacity))),
	}

	for _, bucket := range m.buckets {
		if bucket.Len() == 0 {
			stats.EmptyBuckets += 1
		}
		if bucket.Len() > stats.LongestChain {
			stats.LongestChain = bucket.Len()
		}
	}

	return stats
}

// String returns one line per bucket of the form "<index>: <chain>".
func (m *ChainedHashMap[V]) String() string {
	var sb strings.Builder
	for idx, bucket := range m.buckets {
		sb.WriteString(fmt.Sprintf("%d: %s\n", idx, bucket.String()))
	}
	return sb.String()
}

// Render is like String, but the output is styled for a terminal.
// Empty buckets are dimmed and buckets holding more than one entry are highlighted.
func (m *ChainedHashMap[V]) Render() string {
	var sb strings.Builder
	for idx, bucket := range m.buckets {
		sb.WriteString(utils.BucketIndexStyle.Render(fmt.Sprintf("%d:", idx)))
		sb.WriteString(" ")

		switch {
		case bucket.Len() == 0:
			sb.WriteString(utils.EmptyBucketStyle.Render(bucket.String()))
		case bucket.Len() > 1:
			sb.WriteString(utils.CollisionBucketStyle.Render(bucket.String()))
		default:
			sb.WriteString(utils.BucketStyle.Render(bucket.String()))
		}

		sb.WriteString("\n")
	}
	return sb.String()
}
