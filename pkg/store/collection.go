package store

import (
	"sort"
	"sync"
)

// Keyed is implemented by every record kept in a Collection.
type Keyed interface {
	Key() string
}

// Collection is an ordered, id-keyed container. It shares the owning Store's
// lock, so a single mutation is atomic with respect to every other store
// operation.
type Collection[T Keyed] struct {
	mu          *sync.RWMutex
	items       []T
	newestFirst bool
	notify      func()
}

func newCollection[T Keyed](mu *sync.RWMutex, newestFirst bool, notify func()) *Collection[T] {
	return &Collection[T]{mu: mu, newestFirst: newestFirst, notify: notify}
}

// Add appends rec, or prepends it when the collection is newest-first.
func (c *Collection[T]) Add(rec T) {
	c.mu.Lock()
	if c.newestFirst {
		c.items = append([]T{rec}, c.items...)
	} else {
		c.items = append(c.items, rec)
	}
	c.mu.Unlock()
	c.notify()
}

// Update replaces the record with the same key. Absent keys are a no-op.
func (c *Collection[T]) Update(rec T) bool {
	c.mu.Lock()
	idx := c.indexOf(rec.Key())
	if idx >= 0 {
		c.items[idx] = rec
	}
	c.mu.Unlock()
	if idx < 0 {
		return false
	}
	c.notify()
	return true
}

// Remove drops the record with key id. Absent keys are a no-op.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx >= 0 {
		c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
	}
	c.mu.Unlock()
	if idx < 0 {
		return false
	}
	c.notify()
	return true
}

func (c *Collection[T]) Find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if idx := c.indexOf(id); idx >= 0 {
		return c.items[idx], true
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy in storage order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyLocked()
}

// Filter returns the records matching keep, in storage order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortedBy returns a stably sorted copy.
func (c *Collection[T]) SortedBy(less func(a, b T) bool) []T {
	out := c.All()
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func (c *Collection[T]) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].Key() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) copyLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// replaceLocked swaps the contents; caller holds the write lock.
func (c *Collection[T]) replaceLocked(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}
