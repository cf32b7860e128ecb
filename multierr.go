package connector

import "strings"

// setErrors wraps errors that might occur when multiple setters are
// failing.
type setErrors []error

func (e setErrors) Error() string {
	s := []string{}
	for _, se := range e {
		s = append(s, se.Error())
	}
	return strings.Join(s, ",")
}

// Unwrap allows errors.Is and errors.As to match any of the errors.
func (e setErrors) Unwrap() []error {
	return e
}

// ret returns untyped nil if error is list is empty.
func (e setErrors) ret() error {
	if len(e) > 0 {
		return e
	}
	return nil
}
