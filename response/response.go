package response

import "fmt"

// Response is an immutable container with an optional value and an optional
// carried error.
//
// The zero Response is empty. Combinators return a new Response and leave
// the receiver unchanged, so a Response may be shared between goroutines.
type Response[T any] struct {
	value T
	ok    bool
	err   error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// From returns a Response holding item.
func From[T any](item T) Response[T] {
	return Response[T]{value: item, ok: true}
}

// FromPtr returns an empty Response when p is nil, otherwise a Response
// holding a copy of *p.
func FromPtr[T any](p *T) Response[T] {
	if p == nil {
		return Empty[T]()
	}
	return From(*p)
}

// FromResult adapts Go's (value, error) return convention. A non-nil err
// yields a failed Response and v is discarded.
//
//	r := response.FromResult(strconv.Atoi(input))
func FromResult[T any](v T, err error) Response[T] {
	if err != nil {
		return Failed[T](err)
	}
	return From(v)
}

// Empty returns a Response with neither a value nor an error.
func Empty[T any]() Response[T] {
	return Response[T]{}
}

// Failed returns a Response carrying err and no value.
// Failed(nil) is equivalent to [Empty].
func Failed[T any](err error) Response[T] {
	return Response[T]{err: err}
}

// FailedWith returns a Response holding value together with the error
// carried by original. It is used to keep propagating the original fault
// while substituting a placeholder or last-known value.
func FailedWith[T, O any](value T, original Response[O]) Response[T] {
	return Response[T]{value: value, ok: true, err: original.err}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Value returns the value together with a presence flag.
func (r Response[T]) Value() (T, bool) { return r.value, r.ok }

// Err returns the carried error, or nil.
func (r Response[T]) Err() error { return r.err }

// HasValue reports whether a value is present.
func (r Response[T]) HasValue() bool { return r.ok }

// HasNoValue reports whether no value is present.
func (r Response[T]) HasNoValue() bool { return !r.ok }

// HasError reports whether an error is carried.
func (r Response[T]) HasError() bool { return r.err != nil }

// HasNoError reports whether no error is carried.
func (r Response[T]) HasNoError() bool { return r.err == nil }

// IsEmpty reports whether no value is present, regardless of the error
// channel.
func (r Response[T]) IsEmpty() bool { return !r.ok }

// String renders the value with %v when present, otherwise the error's
// message, otherwise "". It is meant for diagnostics, never for equality.
func (r Response[T]) String() string {
	switch {
	case r.ok:
		return fmt.Sprintf("%v", r.value)
	case r.err != nil:
		return r.err.Error()
	}
	return ""
}

// ─────────────────────────────────────────────────────────────────────────────
// Taps
// ─────────────────────────────────────────────────────────────────────────────

// ConsumeValue calls consumer with the value when one is present.
// A nil consumer is ignored. It returns r for chaining.
func (r Response[T]) ConsumeValue(consumer func(T)) Response[T] {
	if consumer != nil && r.ok {
		consumer(r.value)
	}
	return r
}

// ConsumeError calls consumer with the carried error when there is one.
// A nil consumer is ignored. It returns r for chaining.
func (r Response[T]) ConsumeError(consumer func(error)) Response[T] {
	if consumer != nil && r.err != nil {
		consumer(r.err)
	}
	return r
}

// Consume runs [Response.ConsumeValue] then [Response.ConsumeError].
func (r Response[T]) Consume(valueConsumer func(T), errorConsumer func(error)) Response[T] {
	return r.ConsumeValue(valueConsumer).ConsumeError(errorConsumer)
}

// ─────────────────────────────────────────────────────────────────────────────
// Extraction
// ─────────────────────────────────────────────────────────────────────────────

// ElseReturn returns the value, or alternative when no value is present.
func (r Response[T]) ElseReturn(alternative T) T {
	if r.ok {
		return r.value
	}
	return alternative
}

// ElseErr returns the value and a nil error when a value is present;
// otherwise it returns the error built by supplier. A nil supplier, or one
// returning nil, yields [ErrNoValue] so that a missing value never looks
// like success.
//
//	user, err := r.ElseErr(func() error { return ErrUserNotFound })
func (r Response[T]) ElseErr(supplier func() error) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	if supplier != nil {
		if err := supplier(); err != nil {
			return zero, err
		}
	}
	return zero, ErrNoValue
}

// ElseWrap returns the value and a nil error when a value is present;
// otherwise it returns wrap(cause), where cause is the carried error or
// [ErrNoValue] for an empty Response. Use it to attach context while keeping
// the cause chain:
//
//	cfg, err := r.ElseWrap(func(cause error) error {
//	    return fmt.Errorf("loading config: %w", cause)
//	})
//
// A wrap returning nil yields the cause itself.
func (r Response[T]) ElseWrap(wrap func(error) error) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	cause := r.err
	if cause == nil {
		cause = ErrNoValue
	}
	if err := wrap(cause); err != nil {
		return zero, err
	}
	return zero, cause
}
