package cell

import "errors"

// ErrAlreadySet is returned by [Immutable.TrySet], and carried by the panic
// raised from [Immutable.Set], when the cell already holds a value.
//
//	defer func() {
//	    if err, ok := recover().(error); ok && errors.Is(err, cell.ErrAlreadySet) {
//	        // double write
//	    }
//	}()
var ErrAlreadySet = errors.New("cell: value already set")
