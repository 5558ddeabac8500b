package hashmap

// BaseHashMap is the set of operations shared by every map keyed by K.
type BaseHashMap[K any, V any] interface {
	Get(K) (val V, ok bool)
	Put(K, V)
	Remove(K) (removed bool)
	ContainsKey(K) bool

	// Range iterates over the map's key/value pairs. If the callback function returns false, iteration stops.
	Range(func(K, V) (contd bool))
}

// HashMap is a BaseHashMap that also reports its number of entries.
type HashMap[K any, V any] interface {
	BaseHashMap[K, V]
	Len() int
}

// KeyValue is a single key/value pair copied out of a map.
type KeyValue[V any] struct {
	Key   string
	Value V
}
