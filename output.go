package connector

import (
	"fmt"
	"reflect"
)

// Output wraps a getter method. Caching output keeps the value until one
// of the inputs it observes reports a change. Not caching output calls the
// method every time.
type Output struct {
	node
	method   reflect.Value
	dataType DataType
	caching  bool
	cached   interface{}
	valid    bool
	// inputs which announced a change that is not reported yet.
	announcements map[Connector]struct{}
	deactivated   bool
	changed       bool
}

// NewOutput returns an output for method, which must be func() T. Data
// type is T unless WithType option is provided. Caching is taken from
// WithCaching option or from Config.Caching.
func NewOutput(owner, method interface{}, opts ...Option) *Output {
	o := newOptions(opts)
	m := function("output", method, 0, 1)
	out := &Output{
		method:        m,
		dataType:      OfType(m.Type().Out(0)),
		caching:       o.cfg.Caching,
		announcements: make(map[Connector]struct{}),
	}
	if o.dataType != nil {
		out.dataType = *o.dataType
	}
	if o.caching != nil {
		out.caching = *o.caching
	}
	out.node = newNode(out, owner, method, o)
	return out
}

// Type returns the data type of output.
func (o *Output) Type() DataType {
	return o.dataType
}

// IsCaching returns true if output caches its value.
func (o *Output) IsCaching() bool {
	return o.caching
}

// Get returns the value of output. Destroyed output returns nil.
func (o *Output) Get() interface{} {
	if o.destroyed {
		return nil
	}
	if o.caching && o.valid {
		return o.cached
	}
	v := o.call(o.method)[0].Interface()
	if o.caching {
		o.cached, o.valid = v, true
	}
	return v
}

// Call is the same as Get.
func (o *Output) Call(args ...interface{}) (interface{}, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("%w: %v takes no arguments, got %d", ErrInvalidOperation, o.name, len(args))
	}
	if o.destroyed {
		return nil, ErrDestroyed
	}
	return o.Get(), nil
}

// CheckConnection returns an error if output cannot be connected to c.
func (o *Output) CheckConnection(c Connector) error {
	if err := o.checkConnection(c); err != nil {
		return err
	}
	if _, ok := c.(*Associate); ok {
		return fmt.Errorf("%w: %v cannot be connected", ErrInvalidOperation, c.Name())
	}
	if _, ok := c.(InputConnector); !ok {
		return fmt.Errorf("%w: %v is not an input", ErrConnectionType, c.Name())
	}
	return nil
}

// NoticeAnnouncement passes the progress indicator of input c to the
// connected inputs and announces the change to them.
func (o *Output) NoticeAnnouncement(c Connector) {
	p := Nop
	if in, ok := c.(InputConnector); ok {
		p = in.ProgressIndicator()
	}
	for _, conn := range o.Connections() {
		in := conn.(InputConnector)
		in.SetProgressIndicator(p)
		in.NoticeAnnouncement(o)
	}
	o.announcements[c] = struct{}{}
}

// NoticeValueChange invalidates the cache. When all announced changes are
// reported, connected inputs are notified, unless output is deactivated.
func (o *Output) NoticeValueChange(c Connector) {
	if o.caching {
		o.invalidate()
	}
	delete(o.announcements, c)
	if len(o.announcements) > 0 {
		return
	}
	if o.deactivated {
		o.changed = true
		return
	}
	for _, conn := range o.Connections() {
		conn.NoticeValueChange(o)
	}
}

// ExpectsInputFrom returns true if input c announced a change which is not
// reported yet.
func (o *Output) ExpectsInputFrom(c Endpoint) bool {
	_, ok := o.announcements[c.Connector()]
	return ok
}

// Deactivate stops notifications of connected inputs. Changes are still
// tracked.
func (o *Output) Deactivate() {
	o.deactivated = true
}

// Activate resumes notifications of connected inputs. If values changed
// while output was deactivated, connected inputs are notified once.
func (o *Output) Activate() {
	o.deactivated = false
	if !o.changed {
		return
	}
	o.changed = false
	o.announcements = make(map[Connector]struct{})
	conns := o.Connections()
	for _, c := range conns {
		c.NoticeAnnouncement(o)
	}
	for _, c := range conns {
		c.NoticeValueChange(o)
	}
}

// IsActive returns false if output is deactivated.
func (o *Output) IsActive() bool {
	return !o.deactivated
}

func (o *Output) invalidate() {
	o.cached, o.valid = nil, false
}

func (o *Output) detach() {
	o.node.detach()
	o.method = reflect.Value{}
	o.invalidate()
	o.announcements = make(map[Connector]struct{})
}
