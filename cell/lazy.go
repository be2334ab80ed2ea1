package cell

import (
	"sync"
	"sync/atomic"
)

// Lazy memoizes the result of a producer that is run on first access.
type Lazy[V any] struct {
	once     sync.Once
	done     atomic.Bool
	producer func() V
	val      V
}

// Init returns a Lazy that will call producer on the first [Lazy.Get].
// A nil producer memoizes the zero value.
func Init[V any](producer func() V) *Lazy[V] {
	return &Lazy[V]{producer: producer}
}

// Get returns the memoized value, running the producer first if no call has
// done so yet. Concurrent callers wait for the single evaluation to finish.
//
// If the producer panics the panic reaches the caller that triggered the
// evaluation. The producer is not retried; later calls return the zero value
// and [Lazy.Evaluated] stays false.
func (l *Lazy[V]) Get() V {
	l.once.Do(func() {
		producer := l.producer
		l.producer = nil
		if producer != nil {
			l.val = producer()
		}
		l.done.Store(true)
	})
	return l.val
}

// Evaluated reports whether the producer has run to completion.
func (l *Lazy[V]) Evaluated() bool {
	return l.done.Load()
}

// LazyErr is a [Lazy] for producers following the (value, error) convention.
// The value and the error are memoized together; a failed evaluation is not
// retried.
type LazyErr[V any] struct {
	lazy *Lazy[result[V]]
}

type result[V any] struct {
	val V
	err error
}

// InitErr returns a LazyErr that will call producer on the first
// [LazyErr.Get].
func InitErr[V any](producer func() (V, error)) *LazyErr[V] {
	if producer == nil {
		return &LazyErr[V]{lazy: Init[result[V]](nil)}
	}
	return &LazyErr[V]{lazy: Init(func() result[V] {
		v, err := producer()
		return result[V]{val: v, err: err}
	})}
}

// Get returns the memoized value and error.
func (l *LazyErr[V]) Get() (V, error) {
	r := l.lazy.Get()
	return r.val, r.err
}

// Evaluated reports whether the producer has run to completion.
func (l *LazyErr[V]) Evaluated() bool {
	return l.lazy.Evaluated()
}
