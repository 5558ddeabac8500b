package hashmap

// MapCounter counts occurrences of keys on top of any HashMap that stores int values.
//
// MapCounter keeps no state of its own, so changes made directly to the backing map are always reflected.
type MapCounter[K any] struct {
	HashMap[K, int]
}

// NewMapCounter creates a MapCounter that stores its counts in the given map.
func NewMapCounter[K any](backend HashMap[K, int]) *MapCounter[K] {
	return &MapCounter[K]{
		HashMap: backend,
	}
}

// Increment adds one to the count of the given key and returns the new count.
// A key that has not been seen before starts from zero.
func (m *MapCounter[K]) Increment(key K) int {
	count, _ := m.HashMap.Get(key)
	count += 1
	m.HashMap.Put(key, count)
	return count
}

// Count returns the number of times the given key has been incremented, or zero if it never was.
func (m *MapCounter[K]) Count(key K) int {
	count, _ := m.HashMap.Get(key)
	return count
}
