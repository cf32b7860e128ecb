// Package mock provides connector-bearing types and allows to test
// propagation in the graph.
package mock

import (
	"errors"
	"sort"
	"strconv"

	"github.com/pipelined/connector"
)

// ErrUnknownItem is returned when item id is not known.
var ErrUnknownItem = errors.New("unknown item")

// Example has connectors of every kind. Every wrapped method is counted.
type Example struct {
	counter
	// Value is not caching.
	Value *connector.Output
	// Value2 is caching and returns doubled value.
	Value2 *connector.Output
	Text   *connector.Output
	Items  *connector.Output

	SetValue            *connector.Input
	SetValue2           *connector.Input
	SetValueNoUpdate    *connector.Input
	SetText             *connector.Input
	ComputeValueAndText *connector.Input
	TakeList            *connector.Input
	Trigger             *connector.Trigger
	// AddItem removes and adds items when connected output changes.
	AddItem *connector.MultiInput
	// AddItemReplace replaces items when connected output changes.
	AddItemReplace *connector.MultiInput

	val       int
	txt       string
	triggered bool
	items     map[int]int
	nextID    int
	list      []int
	history   []int
}

// New returns example with all connectors built. Options are applied to
// every connector.
func New(opts ...connector.Option) *Example {
	e := &Example{
		counter: counter{calls: make(map[string]int)},
		items:   make(map[int]int),
	}
	e.Value = connector.NewOutput(e, e.value, with(opts, connector.WithCaching(false))...)
	e.Value2 = connector.NewOutput(e, e.value2, with(opts, connector.WithCaching(true))...)
	e.Text = connector.NewOutput(e, e.text, with(opts, connector.WithCaching(false))...)
	e.Items = connector.NewOutput(e, e.itemList, with(opts, connector.WithName("Items"))...)

	e.SetValue = connector.NewInput(e, e.setValue, with(opts, connector.WithObservers(e.Value))...)
	e.SetValue2 = connector.NewInput(e, e.setValue2, with(opts,
		connector.WithObservers(e.Value, e.Value2),
		connector.WithType(connector.Of(0, 0.0)),
	)...)
	e.SetValueNoUpdate = connector.NewInput(e, e.setValueNoUpdate, opts...)
	e.SetText = connector.NewInput(e, e.setText, opts...)
	e.ComputeValueAndText = connector.NewInput(e, e.computeValueAndText, with(opts, connector.WithObservers(e.Value, e.Text))...)
	e.TakeList = connector.NewInput(e, e.takeList, opts...)
	e.Trigger = connector.NewTrigger(e, e.trigger, with(opts, connector.WithObservers(e.Value))...)
	e.AddItem = connector.NewMultiInput(e, e.addItem, e.removeItem, with(opts, connector.WithObservers(e.Items))...)
	e.AddItemReplace = connector.NewMultiInput(e, e.addItem, e.removeItem, with(opts,
		connector.WithObservers(e.Items),
		connector.WithReplace(e.replaceItem),
		connector.WithName("AddItemReplace"),
	)...)
	return e
}

func with(opts []connector.Option, more ...connector.Option) []connector.Option {
	return append(opts[:len(opts):len(opts)], more...)
}

func (e *Example) value() int {
	e.advance("Value")
	e.history = append(e.history, e.val)
	return e.val
}

func (e *Example) value2() int {
	e.advance("Value2")
	return 2 * e.val
}

func (e *Example) text() string {
	e.advance("Text")
	return e.txt
}

// itemList returns items ordered by id.
func (e *Example) itemList() []int {
	e.advance("Items")
	ids := make([]int, 0, len(e.items))
	for id := range e.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	result := make([]int, 0, len(ids))
	for _, id := range ids {
		result = append(result, e.items[id])
	}
	return result
}

func (e *Example) setValue(v int) {
	e.advance("SetValue")
	e.val = v
}

func (e *Example) setValue2(v float64) {
	e.advance("SetValue2")
	e.val = int(v)
}

func (e *Example) setValueNoUpdate(v int) {
	e.advance("SetValueNoUpdate")
	e.val = v
}

func (e *Example) setText(s string) {
	e.advance("SetText")
	e.txt = s
}

func (e *Example) computeValueAndText(v int) {
	e.advance("ComputeValueAndText")
	e.val = v
	e.txt = strconv.Itoa(v)
}

func (e *Example) takeList(l []int) {
	e.advance("TakeList")
	e.list = l
}

func (e *Example) trigger() {
	e.advance("Trigger")
	e.triggered = true
}

func (e *Example) addItem(v int) int {
	e.advance("AddItem")
	id := e.nextID
	e.nextID++
	e.items[id] = v
	return id
}

func (e *Example) removeItem(id int) error {
	e.advance("RemoveItem")
	if _, ok := e.items[id]; !ok {
		return ErrUnknownItem
	}
	delete(e.items, id)
	return nil
}

func (e *Example) replaceItem(id int, v int) error {
	e.advance("ReplaceItem")
	if _, ok := e.items[id]; !ok {
		return ErrUnknownItem
	}
	e.items[id] = v
	return nil
}

// Val returns the current value without invoking connectors.
func (e *Example) Val() int {
	return e.val
}

// Txt returns the current text without invoking connectors.
func (e *Example) Txt() string {
	return e.txt
}

// Triggered returns true if trigger was fired.
func (e *Example) Triggered() bool {
	return e.triggered
}

// ItemsByID returns a copy of items.
func (e *Example) ItemsByID() map[int]int {
	result := make(map[int]int, len(e.items))
	for id, v := range e.items {
		result[id] = v
	}
	return result
}

// List returns the last list passed to TakeList.
func (e *Example) List() []int {
	return e.list
}

// History returns values returned by Value output.
func (e *Example) History() []int {
	return e.history
}

// counter counts calls of wrapped methods.
type counter struct {
	calls map[string]int
}

func (c *counter) advance(method string) {
	c.calls[method]++
}

// Calls returns the number of calls of the method.
func (c *counter) Calls(method string) int {
	return c.calls[method]
}

// Reset resets counter's metrics.
func (c *counter) Reset() {
	c.calls = make(map[string]int)
}
