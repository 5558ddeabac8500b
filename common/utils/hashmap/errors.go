package hashmap

import "errors"

var (
	ErrInvalidCapacity     = errors.New("capacity must be a positive integer")
	ErrNilHasher           = errors.New("hasher must not be nil")
	ErrUnknownHashFunction = errors.New("unknown hash function")
	ErrModifiedDuringRange = errors.New("hash map was modified during Range")
)
