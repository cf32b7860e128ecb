package connector

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pipelined/connector/metric"
)

// Connector is a node of the graph. It stands in for one method of one
// owner and keeps the list of connected peers.
//
// Connect and Disconnect are one-sided primitives. Use Connect and
// Disconnect functions of this package to keep edges bidirectional.
type Connector interface {
	Endpoint
	// Name returns Owner.Method string for diagnostics.
	Name() string
	// Call invokes the connector the way its method is invoked.
	Call(args ...interface{}) (interface{}, error)
	// Connections returns connected peers in the order of connection.
	Connections() []Connector
	// CheckConnection returns an error if connection is not possible.
	CheckConnection(Connector) error
	Connect(Connector) error
	Disconnect(Connector) error
	// DisconnectAll removes every edge of the connector on both sides.
	DisconnectAll() error
	// NoticeAnnouncement is called when a value this connector depends on
	// is about to change.
	NoticeAnnouncement(Connector)
	// NoticeValueChange is called when a value this connector depends on
	// has changed.
	NoticeValueChange(Connector)
}

// Endpoint resolves to a connector. Both connectors and proxies are
// endpoints.
type Endpoint interface {
	Connector() Connector
}

// Typed is implemented by connectors with declared payload type.
type Typed interface {
	Type() DataType
}

// Owner can be implemented by connector-bearing types to list their
// connectors. Otherwise exported connector fields are used.
type Owner interface {
	Connectors() []Connector
}

// node is the common part of all connectors.
type node struct {
	self        Connector
	name        string
	connections []Connector
	log         Logger
	meter       *metric.Meter
	destroyed   bool
}

func newNode(self Connector, owner interface{}, method interface{}, o options) node {
	name := o.name
	if name == "" {
		name = methodName(method)
	}
	name = typeName(owner) + "." + name
	return node{
		self:  self,
		name:  name,
		log:   o.cfg.Logger,
		meter: o.cfg.Metrics.Meter(name),
	}
}

// Connector returns the connector itself.
func (n *node) Connector() Connector {
	return n.self
}

// Name returns Owner.Method string.
func (n *node) Name() string {
	return n.name
}

func (n *node) String() string {
	return n.name
}

// Connections returns a copy of connected peers.
func (n *node) Connections() []Connector {
	return append([]Connector(nil), n.connections...)
}

// Connect appends the peer to the edge list if the connector accepts it.
func (n *node) Connect(c Connector) error {
	c = c.Connector()
	if err := n.self.CheckConnection(c); err != nil {
		return err
	}
	n.connections = append(n.connections, c)
	return nil
}

// Disconnect removes the peer from the edge list.
func (n *node) Disconnect(c Connector) error {
	c = c.Connector()
	for i := range n.connections {
		if n.connections[i] == c {
			n.connections = append(n.connections[:i], n.connections[i+1:]...)
			return nil
		}
	}
	return ErrNotConnected
}

// DisconnectAll removes all edges on both sides.
func (n *node) DisconnectAll() error {
	for len(n.connections) > 0 {
		if err := Disconnect(n.self, n.connections[0]); err != nil {
			return err
		}
	}
	return nil
}

// checkConnection performs checks common for all connectors.
func (n *node) checkConnection(c Connector) error {
	if n.destroyed {
		return ErrDestroyed
	}
	for _, conn := range n.connections {
		if conn == c {
			return ErrDuplicateConnection
		}
	}
	return nil
}

func (n *node) logger() Logger {
	return n.log
}

func (n *node) detach() {
	n.destroyed = true
}

// call invokes the method and measures it.
func (n *node) call(m reflect.Value, args ...reflect.Value) []reflect.Value {
	start := time.Now()
	out := m.Call(args)
	n.meter.Call(time.Since(start))
	return out
}

// errorOf returns the error from the last result value if method has one.
func errorOf(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	if err, ok := out[len(out)-1].Interface().(error); ok {
		return err
	}
	return nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// function validates method signature and returns its value.
func function(kind string, method interface{}, in int, out ...int) reflect.Value {
	v := reflect.ValueOf(method)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("connector: %s must be a function, got %T", kind, method))
	}
	t := v.Type()
	if t.NumIn() != in || t.IsVariadic() {
		panic(fmt.Sprintf("connector: %s must take %d arguments, got %v", kind, in, t))
	}
	for _, n := range out {
		if t.NumOut() == n {
			return v
		}
	}
	panic(fmt.Sprintf("connector: %s must return %v values, got %v", kind, out, t))
}

// returnsError checks that an optional last result is an error.
func returnsError(kind string, v reflect.Value, results int) {
	t := v.Type()
	if t.NumOut() == results+1 && t.Out(results) != errorType {
		panic(fmt.Sprintf("connector: %s must return error as last value, got %v", kind, t))
	}
}

// typeName returns the name of the owner type.
func typeName(owner interface{}) string {
	if owner == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(owner)
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Interface {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// methodName derives the method name from the runtime symbol of a method
// value, e.g. "pkg.(*Sine).setFrequency-fm" becomes "SetFrequency".
func methodName(method interface{}) string {
	f := runtime.FuncForPC(reflect.ValueOf(method).Pointer())
	if f == nil {
		return "<unknown>"
	}
	name := strings.TrimSuffix(f.Name(), "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
