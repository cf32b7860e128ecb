package connector_test

import (
	"fmt"

	"github.com/pipelined/connector"
)

type thermometer struct {
	Fahrenheit *connector.Output
	SetCelsius *connector.Input
	celsius    float64
}

func newThermometer() *thermometer {
	t := &thermometer{}
	t.Fahrenheit = connector.NewOutput(t, t.fahrenheit)
	t.SetCelsius = connector.NewInput(t, t.setCelsius, connector.WithObservers(t.Fahrenheit))
	return t
}

func (t *thermometer) fahrenheit() float64 {
	return t.celsius*9/5 + 32
}

func (t *thermometer) setCelsius(c float64) {
	t.celsius = c
}

type rectangle struct {
	Area      *connector.Output
	SetWidth  *connector.Input
	SetHeight *connector.Input
	w, h      int
}

func newRectangle() *rectangle {
	r := &rectangle{}
	r.Area = connector.NewOutput(r, r.area)
	r.SetWidth = connector.NewInput(r, r.setWidth, connector.WithObservers(r.Area))
	r.SetHeight = connector.NewInput(r, r.setHeight, connector.WithObservers(r.Area))
	return r
}

func (r *rectangle) area() int {
	return r.w * r.h
}

func (r *rectangle) setWidth(w int) {
	r.w = w
}

func (r *rectangle) setHeight(h int) {
	r.h = h
}

// display prints every value it gets.
type display struct {
	Show *connector.Input
}

func newDisplay() *display {
	d := &display{}
	d.Show = connector.NewInput(d, d.show, connector.WithType(connector.Any()))
	return d
}

func (d *display) show(v interface{}) {
	fmt.Println(v)
}

func Example() {
	t := newThermometer()
	d := newDisplay()
	if err := connector.Connect(t.Fahrenheit, d.Show); err != nil {
		fmt.Println(err)
		return
	}
	_ = t.SetCelsius.Set(100)
	// Output:
	// 32
	// 212
}

func ExampleSetMultipleValues() {
	r := newRectangle()
	d := newDisplay()
	_ = connector.Connect(r.Area, d.Show)

	// area is shown after every change
	_ = r.SetWidth.Set(2)
	_ = r.SetHeight.Set(3)

	// area is shown once
	_ = connector.SetMultipleValues([]connector.Value{
		{Setter: r.SetWidth, Value: 4},
		{Setter: r.SetHeight, Value: 5},
	}, nil)
	// Output:
	// 0
	// 0
	// 6
	// 20
}

func ExampleConnect() {
	r := newRectangle()
	t := newThermometer()
	err := connector.Connect(r.Area, t.SetCelsius)
	fmt.Println(err)
	// Output:
	// connect rectangle.Area and thermometer.SetCelsius: incompatible connector: thermometer.SetCelsius expects float64, rectangle.Area delivers int
}
