// Package boxed provides null-safe, chainable containers for a single value
// ([Box]) and for a read-only sequence of values ([List]).
//
// # Overview
//
// A [Box] holds at most one value. Absence is explicit: a box built with
// [Of] is always present, even when it wraps a zero value, and only [Empty],
// a nil pointer passed to [FromPtr], or a failed guard produce an empty box.
// Once a box is empty every further transformation yields an empty box
// without calling the supplied function:
//
//	n := boxed.To(boxed.From(func() string { return "test" }), utf8.RuneCountInString)
//	v, ok := n.Get() // → 4, true
//
//	e := boxed.To(boxed.Empty[string](), utf8.RuneCountInString)
//	e.IsEmpty()      // → true, the function was never called
//
// # Immutability
//
// Boxes are values. Every operation returns a new box and never modifies the
// receiver, so boxes may be shared between goroutines without locking.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are package-level functions:
//
//	// Method-based (element type preserved):
//	b.Filter(func(s string) bool { return s != "" })
//
//	// Package-level (element type changes):
//	boxed.To(b, strconv.Quote)
//
// Package-level functions: [To], [ToOr], [ToIf], [ToIfOr], [OMap],
// [FlatMap], [MapList], [MapListIf].
//
// # Callbacks
//
// Functions, predicates and suppliers are called synchronously on the
// calling goroutine. A panic raised by a callback is never recovered by this
// package; it reaches the caller unchanged.
package boxed
