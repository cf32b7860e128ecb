package connector

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionType is returned when a peer has the wrong connector role
	// or when payload types are incompatible.
	ErrConnectionType = errors.New("incompatible connector")
	// ErrDuplicateConnection is returned when the edge already exists.
	ErrDuplicateConnection = errors.New("connection already exists")
	// ErrCycle is returned when an output would be connected to an input
	// that updates this very output.
	ErrCycle = errors.New("connection would cause an infinite loop")
	// ErrCardinality is returned when a second output is connected to an
	// input that takes only one connection.
	ErrCardinality = errors.New("input takes only one connection")
	// ErrInvalidOperation is returned when an operation is not allowed for
	// a connector, e.g. connecting to a remove method.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNotConnected is returned when a non-existent edge is removed.
	ErrNotConnected = fmt.Errorf("%w: connectors are not connected", ErrInvalidOperation)
	// ErrDestroyed is returned when a destroyed connector is used.
	ErrDestroyed = fmt.Errorf("%w: connector is destroyed", ErrInvalidOperation)
)

// ConnectionError is returned by graph operations. It keeps the names of
// both connectors and the cause.
type ConnectionError struct {
	Op  string
	A   string
	B   string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s and %s: %v", e.Op, e.A, e.B, e.Err)
}

// Unwrap returns the cause.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func connectionError(op string, a, b Connector, err error) error {
	if err == nil {
		return nil
	}
	return &ConnectionError{
		Op:  op,
		A:   a.Name(),
		B:   b.Name(),
		Err: err,
	}
}
