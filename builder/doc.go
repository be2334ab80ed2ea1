// Package builder walks into nested values step by step, creating and wiring
// in any missing intermediate value on the way.
//
//	addr, ok := builder.WithPtr(
//	    builder.WithPtr(
//	        builder.OfPtr(order),
//	        func(o *Order) *Customer { return o.Customer },
//	        func(o *Order, c *Customer) { o.Customer = c },
//	        func() *Customer { return &Customer{} },
//	    ),
//	    func(c *Customer) *Address { return c.Address },
//	    func(c *Customer, a *Address) { c.Address = a },
//	    func() *Address { return &Address{} },
//	).Done()
//
// [WithPtr] treats a nil pointer as absent. [With] takes a comma-ok getter
// and works for any child type, such as slices or maps.
//
// A Builder rooted at an absent value (for example [OfPtr] with nil)
// short-circuits every step and [Builder.Done] reports false.
//
// [WithKey] and [Path] are the same walk over nested map[string]any values
// using plain or dot-notation keys.
package builder
