package hashmap

import (
	"fmt"
	"strings"
)

// Entry is a single key/value pair linked into a Chain.
//
// The key never changes once the Entry is created. The value may be updated in place through the
// pointer returned by Chain.Find.
type Entry[V any] struct {
	key   string
	Value V

	next *Entry[V]
}

// Key returns the key of the Entry.
func (e *Entry[V]) Key() string {
	return e.key
}

// Next returns the Entry that follows e in its Chain, or nil if e is the tail.
func (e *Entry[V]) Next() *Entry[V] {
	return e.next
}

func (e *Entry[V]) String() string {
	return fmt.Sprintf("(%s, %v)", e.key, e.Value)
}

// Chain is a singly-linked list of entries. It resolves collisions within a single bucket.
//
// size always equals the number of entries reachable from head.
type Chain[V any] struct {
	head *Entry[V]
	size int
}

// NewChain creates a new, empty Chain and returns a pointer to it.
func NewChain[V any]() *Chain[V] {
	return &Chain[V]{}
}

// AddFront links a new Entry holding the given key and value as the new head of the Chain.
//
// AddFront does not check for an existing Entry with the same key. Callers that need unique keys must
// check with Find first.
func (c *Chain[V]) AddFront(key string, value V) {
	c.head = &Entry[V]{
		key:   key,
		Value: value,
		next:  c.head,
	}
	c.size += 1
}

// Find returns the first Entry whose key matches the given key, scanning from head to tail.
//
// If there is no such Entry, then Find returns nil.
func (c *Chain[V]) Find(key string) *Entry[V] {
	for cur := c.head; cur != nil; cur = cur.next {
		if cur.key == key {
			return cur
		}
	}

	return nil
}

// Remove unlinks the first Entry whose key matches the given key.
//
// Remove returns true if an Entry was removed and false otherwise.
func (c *Chain[V]) Remove(key string) bool {
	if c.head == nil {
		return false
	}

	if c.head.key == key {
		c.head = c.head.next
		c.size -= 1
		return true
	}

	prev := c.head
	for cur := c.head.next; cur != nil; cur = cur.next {
		if cur.key == key {
			prev.next = cur.next
			c.size -= 1
			return true
		}
		prev = cur
	}

	return false
}

// Head returns the first Entry of the Chain, or nil if the Chain is empty.
func (c *Chain[V]) Head() *Entry[V] {
	return c.head
}

// Len returns the number of entries in the Chain.
func (c *Chain[V]) Len() int {
	return c.size
}

// Clear drops every Entry from the Chain.
func (c *Chain[V]) Clear() {
	c.head = nil
	c.size = 0
}

// Range calls cb for each key/value pair from head to tail. If cb returns false, iteration stops.
func (c *Chain[V]) Range(cb func(string, V) bool) {
	for cur := c.head; cur != nil; cur = cur.next {
		if !cb(cur.key, cur.Value) {
			return
		}
	}
}

func (c *Chain[V]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for cur := c.head; cur != nil; cur = cur.next {
		if cur != c.head {
			sb.WriteString(" -> ")
		}
		sb.WriteString(cur.String())
	}
	sb.WriteString("]")
	return sb.String()
}
