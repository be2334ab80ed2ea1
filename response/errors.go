package response

import "errors"

// ErrNoValue stands in for a missing cause when a Response without a value
// or an error is extracted with [Response.ElseErr] or [Response.ElseWrap].
var ErrNoValue = errors.New("response: no value")
