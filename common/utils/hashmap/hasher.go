package hashmap

import (
	"github.com/pkg/errors"
)

const (
	HashFunctionSum      = "sum"
	HashFunctionWeighted = "weighted"
)

// Hasher maps a key to a non-negative integer.
//
// The result does not need to be bounded by the capacity of the table; ChainedHashMap reduces it
// modulo its capacity on every lookup. Implementations must be deterministic.
type Hasher interface {
	Hash(key string) uint64
}

// HashFunc adapts an ordinary function to the Hasher interface.
type HashFunc func(key string) uint64

// Hash calls f(key).
func (f HashFunc) Hash(key string) uint64 {
	return f(key)
}

var (
	// SumOrdinals hashes a key to the sum of the ordinal values of its characters.
	// Anagrams always collide.
	SumOrdinals Hasher = HashFunc(sumOrdinals)

	// WeightedSumOrdinals hashes a key to the sum of (position + 1) * ordinal over its characters,
	// which gives later characters more weight and separates most anagrams.
	WeightedSumOrdinals Hasher = HashFunc(weightedSumOrdinals)

	hashersByName = map[string]Hasher{
		HashFunctionSum:      SumOrdinals,
		HashFunctionWeighted: WeightedSumOrdinals,
	}
)

func sumOrdinals(key string) uint64 {
	var hash uint64
	for _, r := range key {
		hash += uint64(r)
	}
	return hash
}

func weightedSumOrdinals(key string) uint64 {
	var (
		hash  uint64
		index uint64
	)
	for _, r := range key {
		hash += (index + 1) * uint64(r)
		index += 1
	}
	return hash
}

// HasherByName returns the built-in Hasher registered under the given name.
func HasherByName(name string) (Hasher, error) {
	hasher, ok := hashersByName[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHashFunction, "\"%s\"", name)
	}

	return hasher, nil
}

// HashFunctionNames returns the names accepted by HasherByName.
func HashFunctionNames() []string {
	return []string{HashFunctionWeighted, HashFunctionSum}
}
