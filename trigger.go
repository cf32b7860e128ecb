package connector

import (
	"fmt"
	"reflect"
)

// Trigger wraps a method without arguments. Like Input, it takes at most
// one connection, but the value of connected output is never pulled.
type Trigger struct {
	input
	method    reflect.Value
	announced bool
}

// NewTrigger returns a trigger for method, which must be func() or
// func() error.
func NewTrigger(owner, method interface{}, opts ...Option) *Trigger {
	o := newOptions(opts)
	m := function("trigger", method, 0, 0, 1)
	returnsError("trigger", m, 0)
	t := &Trigger{method: m}
	t.input = newInput(t, owner, method, o)
	return t
}

// Fire invokes the method and propagates the change to observers.
func (t *Trigger) Fire() error {
	if t.destroyed {
		return ErrDestroyed
	}
	if !t.announced {
		t.announce()
	}
	out := t.call(t.method)
	t.announced = false
	t.report()
	return errorOf(out)
}

// Call is the same as Fire.
func (t *Trigger) Call(args ...interface{}) (interface{}, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %v takes no arguments, got %d", ErrInvalidOperation, t.name, len(args))
	}
	return nil, t.Fire()
}

// CheckConnection returns an error if trigger cannot be connected to c.
// Trigger can be connected to outputs of any type.
func (t *Trigger) CheckConnection(c Connector) error {
	if err := t.checkInput(c); err != nil {
		return err
	}
	if len(t.connections) > 0 {
		return ErrCardinality
	}
	return nil
}

// NoticeAnnouncement announces the change to observers once per change.
func (t *Trigger) NoticeAnnouncement(c Connector) {
	if !t.announced {
		t.announced = true
		t.announce()
	}
}

// NoticeValueChange invokes the method.
func (t *Trigger) NoticeValueChange(c Connector) {
	if err := errorOf(t.call(t.method)); err != nil {
		t.log.Error(fmt.Sprintf("%v: %v", t.name, err))
	}
	t.announced = false
	t.report()
}

func (t *Trigger) detach() {
	t.input.detach()
	t.method = reflect.Value{}
}

func (t *Trigger) validate(interface{}) error {
	if t.destroyed {
		return ErrDestroyed
	}
	return nil
}

func (t *Trigger) set(interface{}) error {
	return t.Fire()
}
