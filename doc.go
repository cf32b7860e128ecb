/*
Package connector allows to wire methods of ordinary types into a graph
that recomputes values when their inputs change.

Concept

A connector stands in for one method of one owner. There are two kinds of
them:

    Input - the setter, receives a value;
    Output - the getter, delivers a value;

Inputs declare observers: the outputs of the same owner whose values
depend on the input. Connecting an output of one owner to an input of
another makes the value flow between them.

Connectors

Connector-bearing types build their connectors in constructors:

    type Sine struct {
        SetFrequency *connector.Input
        Signal       *connector.Output
        frequency    float64
    }

    func NewSine() *Sine {
        s := &Sine{}
        s.Signal = connector.NewOutput(s, s.signal)
        s.SetFrequency = connector.NewInput(s, s.setFrequency,
            connector.WithObservers(s.Signal))
        return s
    }

The payload type of connector is derived from the method signature and can
be overridden with WithType option. Input and output can be connected only
if their types are compatible.

Available connectors:

    Input - func(T), takes at most one connection;
    Trigger - func(), takes at most one connection of any type;
    MultiInput - func(T) ID with remove method func(ID), takes any number
    of connections and optional replace method func(ID, T);
    Output - func() T, caching or not caching.

Propagation

A change is propagated in two phases. First, the input announces the
change to its observers, which announce it to the connected inputs and so
on down the graph. Then the input invokes the method and reports the
change. An output notifies connected inputs only when all announced
changes have been reported, so an output reached by many paths recomputes
once.

Outputs can be deactivated to collapse many changes into one notification.
SetMultipleValues announces many changes before any of them is done.

Progress of a change can be observed with ProgressIndicator, see the
progress package.

Graph operations

    err := connector.Connect(sine.Signal, amp.SetInput)
    err = connector.Disconnect(sine.Signal, amp.SetInput)
    err = connector.DestroyConnectors(sine)

The engine is single-threaded. Connectors must not be used from multiple
goroutines concurrently.
*/
package connector
