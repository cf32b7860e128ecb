package connector

// ProgressIndicator observes announced changes in the graph. Inputs pass
// every connector that announced a change and every connector that
// reported the end of the change.
//
// Indicator is attached to an input for one change only. After the input
// reports, the indicator is replaced with Nop.
type ProgressIndicator interface {
	Announce(Connector)
	Report(Connector)
}

type nopIndicator struct{}

func (nopIndicator) Announce(Connector) {}

func (nopIndicator) Report(Connector) {}

// Nop is the indicator which does nothing. It's attached to every input by
// default.
var Nop ProgressIndicator = nopIndicator{}
