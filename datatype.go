package connector

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// emptyInterface is the type of interface{}. Connectors of this type accept
// any payload.
var emptyInterface = reflect.TypeOf((*interface{})(nil)).Elem()

// DataType describes the payload accepted or delivered by a connector. It is
// either any type, exactly one type or one of several types. Zero value
// accepts any type.
type DataType struct {
	types []reflect.Type
}

// Any returns a data type which is compatible with everything.
func Any() DataType {
	return DataType{}
}

// Of returns a data type of the provided sample values:
//	Of() is any type;
//	Of(0) is exactly int;
//	Of(0, 0.0) is one of int and float64.
func Of(samples ...interface{}) DataType {
	types := make([]reflect.Type, 0, len(samples))
	for _, s := range samples {
		if s == nil {
			panic("connector: nil sample has no type")
		}
		types = append(types, reflect.TypeOf(s))
	}
	return OfType(types...)
}

// OfType returns a data type for provided reflect types. Use it for interface
// types:
//	OfType(reflect.TypeOf((*fmt.Stringer)(nil)).Elem())
func OfType(types ...reflect.Type) DataType {
	d := DataType{}
	for _, t := range types {
		if t == emptyInterface {
			return Any()
		}
		d.types = append(d.types, t)
	}
	return d
}

// IsAny returns true if data type accepts any value.
func (d DataType) IsAny() bool {
	return len(d.types) == 0
}

// Types returns the list of accepted types. Empty for any type.
func (d DataType) Types() []reflect.Type {
	return append([]reflect.Type(nil), d.types...)
}

// Accepts checks if values of data type o can be passed to d. An output
// of one-of type is accepted only if every alternative is accepted.
func (d DataType) Accepts(o DataType) bool {
	if d.IsAny() || o.IsAny() {
		return true
	}
	for _, t := range o.types {
		if !d.acceptsType(t) {
			return false
		}
	}
	return true
}

// AcceptsValue checks if the value can be passed to d.
func (d DataType) AcceptsValue(v interface{}) bool {
	if d.IsAny() {
		return true
	}
	if v == nil {
		for _, t := range d.types {
			if nillable(t.Kind()) {
				return true
			}
		}
		return false
	}
	return d.acceptsType(reflect.TypeOf(v))
}

func (d DataType) acceptsType(t reflect.Type) bool {
	for _, dt := range d.types {
		if t == dt {
			return true
		}
		if dt.Kind() == reflect.Interface && t.Implements(dt) {
			return true
		}
	}
	return false
}

func (d DataType) String() string {
	switch len(d.types) {
	case 0:
		return "any"
	case 1:
		return d.types[0].String()
	}
	s := make([]string, 0, len(d.types))
	for _, t := range d.types {
		s = append(s, t.String())
	}
	return fmt.Sprintf("one of (%s)", strings.Join(s, ", "))
}

// argument converts the value into the argument of wrapped method. Numeric
// values are converted between kinds, so one-of data types like Of(0, 0.0)
// can feed a float64 method.
func argument(t reflect.Type, v interface{}) (reflect.Value, error) {
	if v == nil {
		if nillable(t.Kind()) {
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil cannot be passed as %v", ErrConnectionType, t)
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}
	if numeric(rv.Kind()) && numeric(t.Kind()) {
		cv := rv.Convert(t)
		if !lossless(rv, cv) {
			return reflect.Value{}, fmt.Errorf("%w: %v cannot be passed as %v without loss", ErrConnectionType, v, t)
		}
		return cv, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %T cannot be passed as %v", ErrConnectionType, v, t)
}

// lossless reports if converted value keeps the original one. Float to float
// conversion may round, but must not overflow.
func lossless(original, converted reflect.Value) bool {
	if floating(original.Kind()) && floating(converted.Kind()) {
		if converted.Kind() == reflect.Float32 {
			return math.Abs(original.Float()) <= math.MaxFloat32 || math.IsInf(original.Float(), 0) || math.IsNaN(original.Float())
		}
		return true
	}
	if floating(original.Kind()) && (math.IsNaN(original.Float()) || math.IsInf(original.Float(), 0)) {
		return false
	}
	return converted.Convert(original.Type()).Interface() == original.Interface()
}

func floating(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
