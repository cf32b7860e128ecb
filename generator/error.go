package generator

import "errors"

// ErrNegative is returned when negative value is set to a parameter which
// must be positive.
var ErrNegative = errors.New("value must not be negative")
