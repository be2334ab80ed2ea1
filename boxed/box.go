package boxed

import "fmt"

// Box is a generic, immutable container holding at most one value of type T.
//
// The zero Box is empty. Every method that transforms the box returns a
// *new* Box, leaving the receiver unchanged.
type Box[T any] struct {
	value T
	ok    bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Of returns a present box wrapping seed. Zero values are present values,
// including nil pointers; use [FromPtr] when nil should mean absent.
func Of[T any](seed T) Box[T] {
	return Box[T]{value: seed, ok: true}
}

// Empty returns an empty box of type T.
func Empty[T any]() Box[T] {
	return Box[T]{}
}

// FromPtr returns an empty box when p is nil, otherwise a present box
// holding a copy of *p.
func FromPtr[T any](p *T) Box[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// From returns a box wrapping the supplier's result.
// A nil supplier yields an empty box and nothing is invoked.
func From[T any](supplier func() T) Box[T] {
	if supplier == nil {
		return Empty[T]()
	}
	return Of(supplier())
}

// FromOK returns a box wrapping the result of a comma-ok supplier.
// The box is empty when the supplier is nil or reports false.
//
//	b := boxed.FromOK(func() (string, bool) { v, ok := env["HOME"]; return v, ok })
func FromOK[T any](supplier func() (T, bool)) Box[T] {
	if supplier == nil {
		return Empty[T]()
	}
	v, ok := supplier()
	if !ok {
		return Empty[T]()
	}
	return Of(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether the box holds no value.
func (b Box[T]) IsEmpty() bool { return !b.ok }

// IsNotEmpty reports whether the box holds a value.
func (b Box[T]) IsNotEmpty() bool { return b.ok }

// Get returns the value together with a presence flag.
// Returns the zero value and false when the box is empty.
func (b Box[T]) Get() (T, bool) {
	return b.value, b.ok
}

// GetOr returns the value, or alternative when the box is empty.
func (b Box[T]) GetOr(alternative T) T {
	if b.ok {
		return b.value
	}
	return alternative
}

// Peek calls consumer with the value for side-effects (logging, debugging)
// when the box is present. It returns b unchanged for further chaining.
func (b Box[T]) Peek(consumer func(T)) Box[T] {
	if b.ok {
		consumer(b.value)
	}
	return b
}

// String renders the value with fmt's %v verb, or "" when empty.
// It implements [fmt.Stringer] and is meant for diagnostics only.
func (b Box[T]) String() string {
	if !b.ok {
		return ""
	}
	return fmt.Sprintf("%v", b.value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-preserving combinators
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the value when predicate holds, otherwise returns an empty box.
// An empty box stays empty and predicate is not called.
func (b Box[T]) Filter(predicate func(T) bool) Box[T] {
	return ToIf(b, predicate, identity[T])
}

// Or returns b unchanged when selector holds, otherwise a new box wrapping
// alternative().
//
// Unlike the other combinators, selector is called even when the box is
// empty; it then receives the zero value and ok == false. This lets callers
// route on absence:
//
//	b.Or(func(_ string, ok bool) bool { return ok }, func() string { return "guest" })
func (b Box[T]) Or(selector func(v T, ok bool) bool, alternative func() T) Box[T] {
	if selector(b.value, b.ok) {
		return b
	}
	return Of(alternative())
}

// OrElse returns b when present, otherwise a new box wrapping alternative().
func (b Box[T]) OrElse(alternative func() T) Box[T] {
	return b.Or(isPresent[T], alternative)
}

func identity[T any](v T) T { return v }

func isPresent[T any](_ T, ok bool) bool { return ok }

func always[T any](T) bool { return true }
