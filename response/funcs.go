package response

// Type-transforming operations. Each checks the error channel before
// anything else: a carried error is propagated to the result untouched and
// no callback is invoked.

// ToIf applies function when r holds a value and predicate holds.
//
// A carried error is propagated as-is. A missing value or a failed predicate
// yields an empty Response.
func ToIf[T, N any](r Response[T], predicate func(T) bool, function func(T) N) Response[N] {
	if r.err != nil {
		return Failed[N](r.err)
	}
	if r.ok && predicate(r.value) {
		return From(function(r.value))
	}
	return Empty[N]()
}

// To applies function when r holds a value and carries no error.
//
//	n := response.To(response.From("1"), func(s string) int { return len(s) })
func To[T, N any](r Response[T], function func(T) N) Response[N] {
	if r.err != nil {
		return Failed[N](r.err)
	}
	if r.ok {
		return From(function(r.value))
	}
	return Empty[N]()
}

// As is the monadic bind: when r holds a value and carries no error, the
// Response returned by function becomes the result (it is not nested).
//
//	two := response.As(response.From(1), func(v int) response.Response[int] {
//	    return response.From(v + 1)
//	})
func As[T, N any](r Response[T], function func(T) Response[N]) Response[N] {
	if r.err != nil {
		return Failed[N](r.err)
	}
	if r.ok {
		return function(r.value)
	}
	return Empty[N]()
}

// Use returns function(value) when r holds a value, otherwise fallback.
// The error channel is ignored: a failure without a value returns fallback,
// and a [FailedWith] Response still applies function to its value.
func Use[T, N any](r Response[T], function func(T) N, fallback N) N {
	if r.ok {
		return function(r.value)
	}
	return fallback
}
