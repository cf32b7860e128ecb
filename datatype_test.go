package connector_test

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/connector"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

func TestDataTypeAccepts(t *testing.T) {
	tests := []struct {
		description string
		input       connector.DataType
		output      connector.DataType
		accepts     bool
	}{
		{
			description: "same type",
			input:       connector.Of(0),
			output:      connector.Of(0),
			accepts:     true,
		},
		{
			description: "different type",
			input:       connector.Of(0),
			output:      connector.Of(""),
			accepts:     false,
		},
		{
			description: "any input",
			input:       connector.Any(),
			output:      connector.Of(""),
			accepts:     true,
		},
		{
			description: "any output",
			input:       connector.Of(0),
			output:      connector.Any(),
			accepts:     true,
		},
		{
			description: "one of input",
			input:       connector.Of(0, 0.0),
			output:      connector.Of(0.0),
			accepts:     true,
		},
		{
			description: "one of output",
			input:       connector.Of(0, 0.0),
			output:      connector.Of(0.0, 0),
			accepts:     true,
		},
		{
			description: "one of output partially accepted",
			input:       connector.Of(0),
			output:      connector.Of(0, 0.0),
			accepts:     false,
		},
		{
			description: "interface input",
			input:       connector.OfType(stringerType),
			output:      connector.Of(stringer{}),
			accepts:     true,
		},
		{
			description: "interface not implemented",
			input:       connector.OfType(stringerType),
			output:      connector.Of(0),
			accepts:     false,
		},
	}
	for _, test := range tests {
		assert.Equal(t, test.accepts, test.input.Accepts(test.output), test.description)
	}
}

func TestDataTypeAcceptsValue(t *testing.T) {
	assert.True(t, connector.Any().AcceptsValue(nil))
	assert.True(t, connector.Of(0).AcceptsValue(1))
	assert.False(t, connector.Of(0).AcceptsValue(1.0))
	assert.True(t, connector.Of(0, 0.0).AcceptsValue(1.0))
	assert.True(t, connector.Of([]int{}).AcceptsValue(nil))
	assert.False(t, connector.Of(0).AcceptsValue(nil))
	assert.True(t, connector.OfType(stringerType).AcceptsValue(stringer{}))
}

func TestDataType(t *testing.T) {
	var empty interface{}
	assert.True(t, connector.Any().IsAny())
	assert.True(t, connector.Of().IsAny())
	assert.True(t, connector.OfType(reflect.TypeOf(&empty).Elem()).IsAny())
	assert.False(t, connector.Of(0).IsAny())
	assert.Equal(t, []reflect.Type{reflect.TypeOf(0)}, connector.Of(0).Types())

	assert.Equal(t, "any", connector.Any().String())
	assert.Equal(t, "int", connector.Of(0).String())
	assert.Equal(t, "one of (int, float64)", connector.Of(0, 0.0).String())
	assert.Panics(t, func() { connector.Of(nil) })
}

type holder struct {
	value interface{}
}

func TestNumericConversion(t *testing.T) {
	tests := []struct {
		name   string
		setter func(h *holder) interface{}
		value  interface{}
		stored interface{}
		err    bool
	}{
		{
			name:   "int to float64",
			setter: func(h *holder) interface{} { return func(v float64) { h.value = v } },
			value:  3,
			stored: 3.0,
		},
		{
			name:   "float64 to int",
			setter: func(h *holder) interface{} { return func(v int) { h.value = v } },
			value:  4.0,
			stored: 4,
		},
		{
			name:   "float64 to float32",
			setter: func(h *holder) interface{} { return func(v float32) { h.value = v } },
			value:  0.1,
			stored: float32(0.1),
		},
		{
			name:   "int to int8 overflow",
			setter: func(h *holder) interface{} { return func(v int8) { h.value = v } },
			value:  300,
			err:    true,
		},
		{
			name:   "negative to uint",
			setter: func(h *holder) interface{} { return func(v uint) { h.value = v } },
			value:  -1,
			err:    true,
		},
		{
			name:   "fraction to int",
			setter: func(h *holder) interface{} { return func(v int) { h.value = v } },
			value:  3.7,
			err:    true,
		},
		{
			name:   "fraction to int8",
			setter: func(h *holder) interface{} { return func(v int8) { h.value = v } },
			value:  3.7,
			err:    true,
		},
		{
			name:   "float64 to float32 overflow",
			setter: func(h *holder) interface{} { return func(v float32) { h.value = v } },
			value:  math.MaxFloat64,
			err:    true,
		},
		{
			name:   "NaN to int",
			setter: func(h *holder) interface{} { return func(v int) { h.value = v } },
			value:  math.NaN(),
			err:    true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := &holder{}
			in := connector.NewInput(h, test.setter(h))
			err := in.Set(test.value)
			if test.err {
				assert.True(t, errors.Is(err, connector.ErrConnectionType))
				assert.Nil(t, h.value)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.stored, h.value)
		})
	}
}
