package connector

import (
	"fmt"
	"reflect"
)

// InputConnector is a connector which receives values from outputs.
type InputConnector interface {
	Connector
	// Observers returns outputs of the same owner which depend on this
	// input.
	Observers() []*Output
	// SetProgressIndicator attaches indicator for the next change. Nil
	// indicator is replaced with Nop.
	SetProgressIndicator(ProgressIndicator)
	ProgressIndicator() ProgressIndicator
}

// input is the common part of inputs.
type input struct {
	node
	observers []*Output
	indicator ProgressIndicator
}

func newInput(self Connector, owner, method interface{}, o options) input {
	return input{
		node:      newNode(self, owner, method, o),
		observers: append([]*Output(nil), o.observers...),
		indicator: Nop,
	}
}

// Observers returns outputs affected by this input.
func (in *input) Observers() []*Output {
	return append([]*Output(nil), in.observers...)
}

// SetProgressIndicator attaches indicator for the next change.
func (in *input) SetProgressIndicator(p ProgressIndicator) {
	if p == nil {
		p = Nop
	}
	in.indicator = p
}

// ProgressIndicator returns currently attached indicator.
func (in *input) ProgressIndicator() ProgressIndicator {
	return in.indicator
}

// announce notifies indicator and observers that the change starts.
func (in *input) announce() {
	in.meter.Announce()
	in.indicator.Announce(in.self)
	in.announceToObservers()
}

func (in *input) announceToObservers() {
	for _, o := range in.observers {
		o.NoticeAnnouncement(in.self)
	}
}

// report notifies indicator and observers that the change is done. The
// indicator is detached before observers are notified.
func (in *input) report() {
	in.meter.Report()
	p := in.indicator
	in.indicator = Nop
	p.Report(in.self)
	in.reportToObservers()
}

func (in *input) reportToObservers() {
	for _, o := range in.observers {
		o.NoticeValueChange(in.self)
	}
}

// checkInput performs checks common for all connectable inputs.
func (in *input) checkInput(c Connector) error {
	if err := in.checkConnection(c); err != nil {
		return err
	}
	out, ok := c.(*Output)
	if !ok {
		return fmt.Errorf("%w: %v is not an output", ErrConnectionType, c.Name())
	}
	// only direct loops are detected
	for _, o := range in.observers {
		if o == out {
			return fmt.Errorf("%w: %v observes %v", ErrCycle, out.Name(), in.name)
		}
	}
	return nil
}

func (in *input) detach() {
	in.node.detach()
	in.observers = nil
	in.indicator = Nop
}

// Input wraps a setter method with a single argument. It takes at most one
// connection.
type Input struct {
	input
	method    reflect.Value
	argType   reflect.Type
	dataType  DataType
	announced bool
}

// NewInput returns an input for method, which must be func(T) or
// func(T) error. Data type is T unless WithType option is provided.
func NewInput(owner, method interface{}, opts ...Option) *Input {
	o := newOptions(opts)
	m := function("input", method, 1, 0, 1)
	returnsError("input", m, 0)
	in := &Input{
		method:   m,
		argType:  m.Type().In(0),
		dataType: OfType(m.Type().In(0)),
	}
	if o.dataType != nil {
		in.dataType = *o.dataType
	}
	in.input = newInput(in, owner, method, o)
	return in
}

// Type returns the data type of input.
func (in *Input) Type() DataType {
	return in.dataType
}

// Set invokes the setter with value and propagates the change to
// observers. Announcement is skipped if it was already done for this
// change.
func (in *Input) Set(v interface{}) error {
	if in.destroyed {
		return ErrDestroyed
	}
	arg, err := argument(in.argType, v)
	if err != nil {
		return err
	}
	if !in.announced {
		in.announce()
	}
	out := in.call(in.method, arg)
	in.announced = false
	in.report()
	return errorOf(out)
}

// Call is the same as Set with a single argument.
func (in *Input) Call(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %v takes 1 argument, got %d", ErrInvalidOperation, in.name, len(args))
	}
	return nil, in.Set(args[0])
}

// CheckConnection returns an error if input cannot be connected to c.
func (in *Input) CheckConnection(c Connector) error {
	if err := in.checkInput(c); err != nil {
		return err
	}
	if len(in.connections) > 0 {
		return ErrCardinality
	}
	if !in.dataType.Accepts(c.(Typed).Type()) {
		return fmt.Errorf("%w: %v expects %v, %v delivers %v", ErrConnectionType, in.name, in.dataType, c.Name(), c.(Typed).Type())
	}
	return nil
}

// NoticeAnnouncement forwards announcement to indicator. Observers are
// announced only once per change.
func (in *Input) NoticeAnnouncement(c Connector) {
	in.indicator.Announce(c)
	if !in.announced {
		in.announced = true
		in.announce()
	}
}

// NoticeValueChange pulls the value from output and invokes the setter.
func (in *Input) NoticeValueChange(c Connector) {
	v, err := c.Call()
	in.indicator.Report(c)
	if err == nil {
		err = in.invoke(v)
	}
	if err != nil {
		in.log.Error(fmt.Sprintf("%v: %v", in.name, err))
	}
	in.announced = false
	in.report()
}

func (in *Input) invoke(v interface{}) error {
	arg, err := argument(in.argType, v)
	if err != nil {
		return err
	}
	return errorOf(in.call(in.method, arg))
}

func (in *Input) detach() {
	in.input.detach()
	in.method = reflect.Value{}
}

func (in *Input) validate(v interface{}) error {
	if in.destroyed {
		return ErrDestroyed
	}
	_, err := argument(in.argType, v)
	return err
}

func (in *Input) set(v interface{}) error {
	return in.Set(v)
}
