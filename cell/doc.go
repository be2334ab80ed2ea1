// Package cell provides two single-assignment containers.
//
// [Immutable] is a write-once cell. The first [Immutable.Set] stores the
// value; any later Set is a programming error and panics with an error
// matching [ErrAlreadySet]. [Immutable.TrySet] is the non-panicking form.
//
//	var token cell.Immutable[string]
//	token.Set(load())
//	token.Get(func(t string) { use(t) })
//
// [Lazy] defers a computation until the first [Lazy.Get] and memoizes the
// result. The producer runs at most once, even when many goroutines call Get
// before it has returned; those callers block until the value is stored.
//
//	conf := cell.Init(func() Config { return parse(os.Getenv("APP_CONF")) })
//	conf.Get().Port
//
// Both types are safe for concurrent use and must not be copied after first
// use.
package cell
