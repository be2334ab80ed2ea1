package builder

// Builder holds the current position of a nested walk.
// It is a value; each step returns a new Builder.
type Builder[T any] struct {
	value T
	ok    bool
}

// Of starts a walk at seed.
func Of[T any](seed T) Builder[T] {
	return Builder[T]{value: seed, ok: true}
}

// OfPtr starts a walk at seed. A nil seed gives an absent Builder.
func OfPtr[T any](seed *T) Builder[*T] {
	if seed == nil {
		return Builder[*T]{}
	}
	return Of(seed)
}

// With advances the walk to a child of the current value.
//
// get reads the child and reports whether it is present. When it is not,
// def constructs one and set writes it into the current value before the
// walk moves on. An absent Builder stays absent and no callback is invoked.
func With[T, R any](b Builder[T], get func(T) (R, bool), set func(T, R), def func() R) Builder[R] {
	if !b.ok {
		return Builder[R]{}
	}
	next, ok := get(b.value)
	if !ok {
		next = def()
		set(b.value, next)
	}
	return Of(next)
}

// Done returns the current value and whether the walk reached it.
func (b Builder[T]) Done() (T, bool) {
	return b.value, b.ok
}

// WithPtr is [With] for pointer children. A nil child from get means
// missing, and a nil child from def ends the walk: the result is absent and
// set is not called.
func WithPtr[T, R any](b Builder[*T], get func(*T) *R, set func(*T, *R), def func() *R) Builder[*R] {
	if !b.ok || b.value == nil {
		return Builder[*R]{}
	}
	next := get(b.value)
	if next == nil {
		if next = def(); next == nil {
			return Builder[*R]{}
		}
		set(b.value, next)
	}
	return Of(next)
}
