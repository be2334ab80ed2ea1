package boxed

import (
	"iter"
	"slices"
)

// List is a read-only wrapper around a slice of T that may also be unset.
//
// The wrapped slice is exposed only through fresh copies ([List.Get],
// [List.GetWith]) or read-only traversal ([List.Stream], [List.Each]); the
// internal slice is never handed back to the caller.
//
// ListOf does not copy its argument. It keeps the caller's slice clipped to
// its length, so nothing done through the List can write into the caller's
// backing array. The reverse is not guarded: mutating the original slice
// after wrapping it is undefined behaviour for the List.
type List[T any] struct {
	items []T
	set   bool
}

// ListOf wraps seq. A nil slice yields an unset List.
func ListOf[T any](seq []T) List[T] {
	if seq == nil {
		return List[T]{}
	}
	return List[T]{items: slices.Clip(seq), set: true}
}

// IsEmpty reports whether the list is unset or has no items.
func (l List[T]) IsEmpty() bool { return !l.set || len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l List[T]) IsNotEmpty() bool { return !l.IsEmpty() }

// IsSet reports whether the list wraps a slice, even an empty one.
func (l List[T]) IsSet() bool { return l.set }

// Size returns the number of items, or 0 when the list is unset.
func (l List[T]) Size() int {
	if l.IsEmpty() {
		return 0
	}
	return len(l.items)
}

// First returns the first item together with a presence flag.
// Returns the zero value and false when the list is empty.
func (l List[T]) First() (T, bool) {
	var zero T
	if l.IsEmpty() {
		return zero, false
	}
	return l.items[0], true
}

// Get returns a copy of the items. An empty list yields an empty, non-nil
// slice.
func (l List[T]) Get() []T {
	return l.GetWith(func() []T { return make([]T, 0, len(l.items)) })
}

// GetWith appends the items to the container returned by factory and returns
// it. The factory lets callers pick the capacity or reuse a buffer:
//
//	buf = list.GetWith(func() []string { return buf[:0] })
//
// When the list is empty the factory is not called and an empty, non-nil
// slice is returned.
func (l List[T]) GetWith(factory func() []T) []T {
	if l.IsEmpty() {
		return []T{}
	}
	return append(factory(), l.items...)
}

// Stream returns a lazy sequence over the items. Each call derives a new
// sequence from the list, so the result can be ranged over repeatedly. An
// empty list yields an empty sequence.
//
//	for s := range list.Stream() { ... }
func (l List[T]) Stream() iter.Seq[T] {
	if l.IsEmpty() {
		return func(func(T) bool) {}
	}
	return slices.Values(l.items)
}

// Each calls fn(item, index) for every item.
func (l List[T]) Each(fn func(T, int)) {
	if l.IsEmpty() {
		return
	}
	for i, item := range l.items {
		fn(item, i)
	}
}
