package connector

import (
	"fmt"
	"reflect"
)

// Value is a pair of setter and value for SetMultipleValues. Value is
// ignored for triggers.
type Value struct {
	Setter Endpoint
	Value  interface{}
}

// setter is implemented by connectors which can be set directly.
type setter interface {
	InputConnector
	validate(interface{}) error
	set(interface{}) error
}

type detacher interface {
	detach()
}

type logged interface {
	logger() Logger
}

var endpointType = reflect.TypeOf((*Endpoint)(nil)).Elem()

// Connect connects input and output. Order of arguments doesn't matter.
// If the output is active, the input receives its value right away.
func Connect(a, b Endpoint) error {
	ca, cb := a.Connector(), b.Connector()
	in, out, err := roles(ca, cb)
	if err != nil {
		return connectionError("connect", ca, cb, err)
	}
	if err := in.Connect(out); err != nil {
		return connectionError("connect", out, in, err)
	}
	if err := out.Connect(in); err != nil {
		// roll back the first half
		in.Disconnect(out)
		return connectionError("connect", out, in, err)
	}
	debug(in, fmt.Sprintf("connected %v to %v", out.Name(), in.Name()))
	if _, ok := in.(*Trigger); ok {
		return nil
	}
	if o, ok := out.(*Output); ok && o.IsActive() {
		in.NoticeAnnouncement(out)
		in.NoticeValueChange(out)
	}
	return nil
}

// Disconnect removes connection between input and output.
func Disconnect(a, b Endpoint) error {
	ca, cb := a.Connector(), b.Connector()
	in, out, err := roles(ca, cb)
	if err != nil {
		return connectionError("disconnect", ca, cb, err)
	}
	if err := in.Disconnect(out); err != nil {
		return connectionError("disconnect", out, in, err)
	}
	if err := out.Disconnect(in); err != nil {
		return connectionError("disconnect", out, in, err)
	}
	debug(in, fmt.Sprintf("disconnected %v from %v", out.Name(), in.Name()))
	return nil
}

// roles returns input first.
func roles(a, b Connector) (InputConnector, Connector, error) {
	if in, ok := a.(InputConnector); ok {
		return in, b, nil
	}
	if in, ok := b.(InputConnector); ok {
		return in, a, nil
	}
	return nil, nil, fmt.Errorf("%w: no input between %v and %v", ErrConnectionType, a.Name(), b.Name())
}

// DisconnectAll removes all connections of obj. It's either an endpoint or
// an owner of connectors.
func DisconnectAll(obj interface{}) error {
	for _, c := range Connectors(obj) {
		if err := c.DisconnectAll(); err != nil {
			return err
		}
	}
	return nil
}

// ActivateOutput activates the output. If obj is an owner, all its outputs
// are activated.
func ActivateOutput(obj interface{}) error {
	return outputs(obj, (*Output).Activate)
}

// DeactivateOutput deactivates the output. If obj is an owner, all its
// outputs are deactivated.
func DeactivateOutput(obj interface{}) error {
	return outputs(obj, (*Output).Deactivate)
}

func outputs(obj interface{}, fn func(*Output)) error {
	if e, ok := obj.(Endpoint); ok {
		o, ok := e.Connector().(*Output)
		if !ok {
			return fmt.Errorf("%w: %v is not an output", ErrConnectionType, e.Connector().Name())
		}
		fn(o)
		return nil
	}
	for _, c := range Connectors(obj) {
		if o, ok := c.(*Output); ok {
			fn(o)
		}
	}
	return nil
}

// DestroyConnectors disconnects all connectors of obj and detaches them
// from their methods. Exported connector fields of obj are set to nil.
// Destroyed connectors return ErrDestroyed.
func DestroyConnectors(obj interface{}) error {
	if err := DisconnectAll(obj); err != nil {
		return err
	}
	for _, c := range Connectors(obj) {
		if d, ok := c.(detacher); ok {
			d.detach()
		}
		debug(c, fmt.Sprintf("destroyed %v", c.Name()))
	}
	if _, ok := obj.(Endpoint); ok {
		return nil
	}
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return nil
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if isConnectorField(f) && f.CanSet() {
			f.Set(reflect.Zero(f.Type()))
		}
	}
	return nil
}

// Connectors returns the connectors of obj. Endpoint resolves to its
// connector. Owner returns its connectors. For other values exported
// non-nil connector fields are returned.
func Connectors(obj interface{}) []Connector {
	switch o := obj.(type) {
	case nil:
		return nil
	case Endpoint:
		return []Connector{o.Connector()}
	case Owner:
		return o.Connectors()
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	var connectors []Connector
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if t.Field(i).PkgPath != "" || !isConnectorField(f) || f.IsNil() {
			continue
		}
		connectors = append(connectors, f.Interface().(Endpoint).Connector())
	}
	return connectors
}

func isConnectorField(f reflect.Value) bool {
	switch f.Kind() {
	case reflect.Ptr, reflect.Interface:
		return f.Type().Implements(endpointType)
	}
	return false
}

// SetMultipleValues sets values to many setters at once. All setters
// announce their changes before the first one is invoked, so the outputs
// which depend on several of them are recomputed once. If indicator is not
// nil, it's attached to every setter.
func SetMultipleValues(values []Value, indicator ProgressIndicator) error {
	setters := make([]setter, 0, len(values))
	for _, v := range values {
		c := v.Setter.Connector()
		s, ok := c.(setter)
		if !ok {
			return fmt.Errorf("%w: %v cannot be set", ErrConnectionType, c.Name())
		}
		if err := s.validate(v.Value); err != nil {
			return fmt.Errorf("%v: %w", c.Name(), err)
		}
		setters = append(setters, s)
	}
	if indicator != nil {
		for _, s := range setters {
			s.SetProgressIndicator(indicator)
		}
	}
	for _, s := range setters {
		s.NoticeAnnouncement(s)
	}
	var errs setErrors
	for i, s := range setters {
		if err := s.set(values[i].Value); err != nil {
			errs = append(errs, fmt.Errorf("%v: %w", s.Name(), err))
		}
	}
	return errs.ret()
}

func debug(c Connector, msg string) {
	if l, ok := c.(logged); ok {
		l.logger().Debug(msg)
	}
}
