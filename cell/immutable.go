package cell

import (
	"fmt"
	"sync"
)

// Immutable is a cell that can be written at most once and read many times.
// The zero value is an unset cell ready for use.
type Immutable[V any] struct {
	mu      sync.RWMutex
	written bool
	val     V
}

// NewImmutable returns an unset cell.
func NewImmutable[V any]() *Immutable[V] {
	return &Immutable[V]{}
}

// Set stores v. Calling Set on a cell that already holds a value is a
// contract violation: it panics with an error wrapping [ErrAlreadySet] and
// the stored value is left untouched.
func (c *Immutable[V]) Set(v V) {
	if err := c.TrySet(v); err != nil {
		panic(err)
	}
}

// TrySet stores v if the cell is unset. Otherwise it returns an error
// wrapping [ErrAlreadySet]. Exactly one of several concurrent writers
// succeeds.
func (c *Immutable[V]) TrySet(v V) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.written {
		return fmt.Errorf("%w: have %v, rejected %v", ErrAlreadySet, c.val, v)
	}
	c.val = v
	c.written = true
	return nil
}

// Get calls consumer with the stored value and reports whether it did.
// Nothing is called while the cell is unset.
func (c *Immutable[V]) Get(consumer func(V)) bool {
	v, ok := c.load()
	if !ok {
		return false
	}
	consumer(v)
	return true
}

// HasValue reports whether the cell has been written.
func (c *Immutable[V]) HasValue() bool {
	_, ok := c.load()
	return ok
}

// Test reports whether predicate holds for the stored value.
// It returns false, without calling predicate, while the cell is unset.
func (c *Immutable[V]) Test(predicate func(V) bool) bool {
	v, ok := c.load()
	return ok && predicate(v)
}

// load copies the value out so callbacks never run under the lock.
func (c *Immutable[V]) load() (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val, c.written
}
