// Package multidata provides a container for values of multi-inputs.
//
// Every added value gets a unique id, which is returned to the multi-input
// and later used to remove or replace the value. Values keep the order of
// addition, replaced value keeps its position.
package multidata

import (
	"errors"

	"github.com/rs/xid"
)

// ErrUnknownID is returned when the id is not in the container.
var ErrUnknownID = errors.New("unknown id")

// Data holds values by id.
type Data struct {
	ids    []string
	values map[string]interface{}
}

// New returns an empty container.
func New() *Data {
	return &Data{values: make(map[string]interface{})}
}

// Add stores the value and returns its new id.
func (d *Data) Add(v interface{}) string {
	id := xid.New().String()
	d.ids = append(d.ids, id)
	d.values[id] = v
	return id
}

// Remove deletes the value with id.
func (d *Data) Remove(id string) error {
	if _, ok := d.values[id]; !ok {
		return ErrUnknownID
	}
	delete(d.values, id)
	for i := range d.ids {
		if d.ids[i] == id {
			d.ids = append(d.ids[:i], d.ids[i+1:]...)
			break
		}
	}
	return nil
}

// Replace sets the value of id.
func (d *Data) Replace(id string, v interface{}) error {
	if _, ok := d.values[id]; !ok {
		return ErrUnknownID
	}
	d.values[id] = v
	return nil
}

// Get returns the value of id.
func (d *Data) Get(id string) (interface{}, bool) {
	v, ok := d.values[id]
	return v, ok
}

// IDs returns ids in the order of addition.
func (d *Data) IDs() []string {
	return append([]string(nil), d.ids...)
}

// Values returns values in the order of addition.
func (d *Data) Values() []interface{} {
	result := make([]interface{}, 0, len(d.ids))
	for _, id := range d.ids {
		result = append(result, d.values[id])
	}
	return result
}

// Len returns the number of values.
func (d *Data) Len() int {
	return len(d.ids)
}

// Clear removes all values.
func (d *Data) Clear() {
	d.ids = nil
	d.values = make(map[string]interface{})
}
