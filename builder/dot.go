package builder

import "strings"

// WithKey advances a walk over nested map[string]any values to m[key],
// creating an empty map there when the key is missing or does not hold a
// map[string]any.
//
// A nil map at the current position is treated as absent.
func WithKey(b Builder[map[string]any], key string) Builder[map[string]any] {
	if m, ok := b.Done(); ok && m == nil {
		return Builder[map[string]any]{}
	}
	return With(b,
		func(m map[string]any) (map[string]any, bool) {
			nested, ok := m[key].(map[string]any)
			return nested, ok
		},
		func(m map[string]any, child map[string]any) { m[key] = child },
		func() map[string]any { return make(map[string]any) },
	)
}

// Path walks the dot-notation key from m, creating intermediate maps as
// needed, and returns the innermost map.
//
//	m := map[string]any{}
//	builder.Path(m, "user.address")["city"] = "London"
//	// m == {"user": {"address": {"city": "London"}}}
//
// A nil m returns nil. An empty key returns m.
func Path(m map[string]any, key string) map[string]any {
	b := Of(m)
	if key != "" {
		for _, seg := range strings.Split(key, ".") {
			b = WithKey(b, seg)
		}
	}
	out, _ := b.Done()
	return out
}
