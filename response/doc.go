// Package response provides [Response], a generic container with two
// independent channels: a value and a carried error.
//
// # States
//
// A Response is in one of three logical states:
//
//   - Value: built with [From] (or [FromResult] with a nil error).
//   - Empty: no value and no error, built with [Empty].
//   - Error: built with [Failed]; no value.
//
// [FailedWith] builds a fourth, hybrid shape: a value (typically a
// placeholder or last-known value) together with the error copied from
// another Response.
//
// # Error priority
//
// The transforming combinators [To], [ToIf] and [As] check the error channel
// first. When an error is present the result carries the identical error and
// the supplied predicate and function are never called:
//
//	r := response.Failed[string](io.ErrUnexpectedEOF)
//	n := response.To(r, func(s string) int { return len(s) })
//	errors.Is(n.Err(), io.ErrUnexpectedEOF) // → true
//
// Extraction ([Use], [Response.ElseReturn], [Response.ElseErr],
// [Response.ElseWrap]) only asks whether a value is present; an error
// without a value is treated as "no value".
//
// Absence and carried errors are data. Nothing in this package panics on its
// own or logs; panics raised by callbacks reach the caller unchanged.
package response
