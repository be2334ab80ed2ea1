package boxed

// This file contains package-level generic functions for operations that
// transform a Box[T] into a Box[R] (or a List[R]).
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. Every one of them routes
// through [ToIfOr]:
//
//	length := boxed.To(
//	    boxed.Of("hello").Filter(func(s string) bool { return s != "" }),
//	    func(s string) int { return len(s) },
//	)

// ToIfOr is the universal combinator:
//
//  1. when b is present and selector(value) holds, the result wraps
//     function(value);
//  2. otherwise, when fallback is non-nil, the result wraps fallback();
//  3. otherwise the result is empty.
//
//	boxed.ToIfOr(boxed.Of(3),
//	    func(n int) bool { return n > 5 },
//	    func(n int) string { return "big" },
//	    func() string { return "small" }) // → "small"
func ToIfOr[T, R any](b Box[T], selector func(T) bool, function func(T) R, fallback func() R) Box[R] {
	if b.ok && selector(b.value) {
		return Of(function(b.value))
	}
	if fallback != nil {
		return Of(fallback())
	}
	return Empty[R]()
}

// ToIf applies function when b is present and selector holds; any other case
// yields an empty box.
func ToIf[T, R any](b Box[T], selector func(T) bool, function func(T) R) Box[R] {
	return ToIfOr(b, selector, function, nil)
}

// To applies function to the value of a present box.
//
//	boxed.To(boxed.Of("test"), func(s string) int { return len(s) }) // → 4
func To[T, R any](b Box[T], function func(T) R) Box[R] {
	return ToIfOr(b, always[T], function, nil)
}

// ToOr applies function to the value of a present box, or wraps fallback()
// when b is empty. A nil fallback behaves like [To].
func ToOr[T, R any](b Box[T], function func(T) R, fallback func() R) Box[R] {
	return ToIfOr(b, always[T], function, fallback)
}

// OMap applies a comma-ok function and flattens its result one level: the
// returned box is present only when b is present and function reports true.
//
//	boxed.OMap(boxed.Of("42"), func(s string) (int, bool) {
//	    n, err := strconv.Atoi(s)
//	    return n, err == nil
//	})
func OMap[T, R any](b Box[T], function func(T) (R, bool)) Box[R] {
	return FlatMap(b, func(v T) Box[R] {
		r, ok := function(v)
		if !ok {
			return Empty[R]()
		}
		return Of(r)
	})
}

// FlatMap applies a box-returning function and flattens the nested box one
// level.
func FlatMap[T, R any](b Box[T], function func(T) Box[R]) Box[R] {
	nested := To(b, function)
	if inner, ok := nested.Get(); ok {
		return inner
	}
	return Empty[R]()
}

// MapList applies a slice-returning function to a present box and wraps the
// result in a [List]. An empty box yields an unset List.
//
//	tags := boxed.MapList(boxed.Of(post), func(p Post) []string { return p.Tags })
func MapList[T, R any](b Box[T], function func(T) []R) List[R] {
	return MapListIf(b, always[T], function)
}

// MapListIf is like [MapList] but only applies function when selector holds.
func MapListIf[T, R any](b Box[T], selector func(T) bool, function func(T) []R) List[R] {
	if b.ok && selector(b.value) {
		return ListOf(function(b.value))
	}
	return List[R]{}
}
