package connector

import (
	"fmt"
	"reflect"
)

// MultiInput wraps an add method. It takes any number of connections and
// keeps the id returned by add method for each of them. When a connected
// output changes, the old value is removed by its id and the new value is
// added. If replace method is provided, the new value replaces the old one
// under the same id instead.
type MultiInput struct {
	input
	method   reflect.Value
	argType  reflect.Type
	dataType DataType
	remove   *Associate
	replace  *Associate
	ids      map[Connector]interface{}
	pending  map[Connector]struct{}
	// announcements of the multi-input itself, see SetMultipleValues.
	selfAnnounced int
}

// NewMultiInput returns a multi-input for add method, which must be
// func(T) ID or func(T) (ID, error). Remove method must be func(ID) or
// func(ID) error. Replace method is provided with WithReplace option.
func NewMultiInput(owner, add, remove interface{}, opts ...Option) *MultiInput {
	o := newOptions(opts)
	m := function("multi-input", add, 1, 1, 2)
	returnsError("multi-input", m, 1)
	r := function("remove method", remove, 1, 0, 1)
	returnsError("remove method", r, 0)
	mi := &MultiInput{
		method:   m,
		argType:  m.Type().In(0),
		dataType: OfType(m.Type().In(0)),
		ids:      make(map[Connector]interface{}),
		pending:  make(map[Connector]struct{}),
	}
	if o.dataType != nil {
		mi.dataType = *o.dataType
	}
	mi.input = newInput(mi, owner, add, o)
	mi.remove = newAssociate(owner, remove, r, o)
	if o.replace != nil {
		rp := function("replace method", o.replace, 2, 0, 1)
		returnsError("replace method", rp, 0)
		mi.replace = newAssociate(owner, o.replace, rp, o)
	}
	return mi
}

// Type returns the data type of multi-input.
func (m *MultiInput) Type() DataType {
	return m.dataType
}

// Remove returns the connector of remove method.
func (m *MultiInput) Remove() *Associate {
	return m.remove
}

// Replace returns the connector of replace method. Nil if multi-input
// doesn't replace.
func (m *MultiInput) Replace() *Associate {
	return m.replace
}

// IsReplacing returns true if replace method is provided.
func (m *MultiInput) IsReplacing() bool {
	return m.replace != nil
}

// ExpectedInputs returns the number of connected outputs which announced
// a change and didn't report it yet. It can be used to defer validation of
// data until all inputs have arrived.
func (m *MultiInput) ExpectedInputs() int {
	return len(m.pending)
}

// idle is true if no change is in progress.
func (m *MultiInput) idle() bool {
	return len(m.pending) == 0 && m.selfAnnounced == 0
}

// Add invokes the add method and returns the id.
func (m *MultiInput) Add(v interface{}) (interface{}, error) {
	if m.destroyed {
		return nil, ErrDestroyed
	}
	arg, err := argument(m.argType, v)
	if err != nil {
		return nil, err
	}
	if m.selfAnnounced > 0 {
		m.selfAnnounced--
	} else if len(m.pending) == 0 {
		m.announce()
	}
	out := m.call(m.method, arg)
	if m.idle() {
		m.report()
	}
	return out[0].Interface(), m.addError(out)
}

// Call is the same as Add with a single argument.
func (m *MultiInput) Call(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %v takes 1 argument, got %d", ErrInvalidOperation, m.name, len(args))
	}
	return m.Add(args[0])
}

// CheckConnection returns an error if multi-input cannot be connected to c.
func (m *MultiInput) CheckConnection(c Connector) error {
	if err := m.checkInput(c); err != nil {
		return err
	}
	if !m.dataType.Accepts(c.(Typed).Type()) {
		return fmt.Errorf("%w: %v expects %v, %v delivers %v", ErrConnectionType, m.name, m.dataType, c.Name(), c.(Typed).Type())
	}
	return nil
}

// Disconnect removes the connection. If a value was added for it, the value
// is removed and the change is propagated to observers.
func (m *MultiInput) Disconnect(c Connector) error {
	c = c.Connector()
	if err := m.node.Disconnect(c); err != nil {
		return err
	}
	delete(m.pending, c)
	id, ok := m.ids[c]
	if !ok {
		return nil
	}
	delete(m.ids, c)
	idle := m.idle()
	if idle {
		m.announce()
	}
	if err := m.remove.callMethod(id); err != nil {
		m.log.Error(fmt.Sprintf("%v: %v", m.remove.name, err))
	}
	if idle {
		m.report()
	}
	return nil
}

// NoticeAnnouncement tracks the announcing output. Observers are announced
// when the first change starts.
func (m *MultiInput) NoticeAnnouncement(c Connector) {
	first := m.idle()
	if c == m.self {
		m.selfAnnounced++
	} else {
		if _, ok := m.pending[c]; ok {
			return
		}
		m.pending[c] = struct{}{}
		m.indicator.Announce(c)
	}
	if first {
		m.announce()
	}
}

// NoticeValueChange updates the value of output c. Observers are notified
// when all announced changes have been reported.
func (m *MultiInput) NoticeValueChange(c Connector) {
	v, err := c.Call()
	m.indicator.Report(c)
	if err == nil {
		err = m.update(c, v)
	}
	if err != nil {
		m.log.Error(fmt.Sprintf("%v: %v", m.name, err))
	}
	delete(m.pending, c)
	if m.idle() {
		m.report()
	}
}

// update replaces or removes and adds the value of connection c.
func (m *MultiInput) update(c Connector, v interface{}) error {
	arg, err := argument(m.argType, v)
	if err != nil {
		return err
	}
	id, ok := m.ids[c]
	if ok && m.replace != nil {
		return m.replace.callMethod(id, v)
	}
	if ok {
		delete(m.ids, c)
		if err := m.remove.callMethod(id); err != nil {
			return err
		}
	}
	out := m.call(m.method, arg)
	m.ids[c] = out[0].Interface()
	return m.addError(out)
}

func (m *MultiInput) addError(out []reflect.Value) error {
	if len(out) < 2 {
		return nil
	}
	return errorOf(out)
}

func (m *MultiInput) detach() {
	m.input.detach()
	m.method = reflect.Value{}
	m.ids = make(map[Connector]interface{})
	m.pending = make(map[Connector]struct{})
	m.selfAnnounced = 0
	m.remove.detach()
	if m.replace != nil {
		m.replace.detach()
	}
}

// Associate wraps the remove or replace method of a multi-input. It cannot
// be connected. Calling it propagates the change to the observers of the
// multi-input.
type Associate struct {
	input
	method reflect.Value
}

func newAssociate(owner, method interface{}, m reflect.Value, o options) *Associate {
	o.name = ""
	a := &Associate{method: m}
	a.input = newInput(a, owner, method, o)
	return a
}

// Call invokes the method and notifies observers. Progress indicator is not
// involved.
func (a *Associate) Call(args ...interface{}) (interface{}, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if _, err := a.arguments(args); err != nil {
		return nil, err
	}
	a.announceToObservers()
	err := a.callMethod(args...)
	a.reportToObservers()
	return nil, err
}

// callMethod invokes the method without any notifications.
func (a *Associate) callMethod(args ...interface{}) error {
	in, err := a.arguments(args)
	if err != nil {
		return err
	}
	return errorOf(a.call(a.method, in...))
}

func (a *Associate) arguments(args []interface{}) ([]reflect.Value, error) {
	t := a.method.Type()
	if len(args) != t.NumIn() {
		return nil, fmt.Errorf("%w: %v takes %d arguments, got %d", ErrInvalidOperation, a.name, t.NumIn(), len(args))
	}
	in := make([]reflect.Value, 0, len(args))
	for i, v := range args {
		arg, err := argument(t.In(i), v)
		if err != nil {
			return nil, err
		}
		in = append(in, arg)
	}
	return in, nil
}

// Connect always fails.
func (a *Associate) Connect(c Connector) error {
	return a.CheckConnection(c)
}

// CheckConnection always fails.
func (a *Associate) CheckConnection(c Connector) error {
	return fmt.Errorf("%w: %v cannot be connected", ErrInvalidOperation, a.name)
}

// NoticeAnnouncement does nothing.
func (a *Associate) NoticeAnnouncement(Connector) {}

// NoticeValueChange does nothing.
func (a *Associate) NoticeValueChange(Connector) {}

func (a *Associate) detach() {
	a.input.detach()
	a.method = reflect.Value{}
}

func (m *MultiInput) validate(v interface{}) error {
	if m.destroyed {
		return ErrDestroyed
	}
	_, err := argument(m.argType, v)
	return err
}

func (m *MultiInput) set(v interface{}) error {
	_, err := m.Add(v)
	return err
}
