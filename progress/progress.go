// Package progress tracks the progress of changes in the connector graph.
//
// Indicator is attached to one or more inputs. When the change starts,
// every connector involved in it is announced to the indicator. Every
// connector that finishes is reported. Filter decides which connectors
// count:
//
//	All - every connector;
//	Outputs - only outputs, useful when getters do the expensive work;
//	OutputsAndUnobservedInputs - outputs and inputs without observers,
//	which are usually sinks at the end of the chain.
//
// Progress values are exposed as output connectors, so they can be
// connected to any input and are updated on every report.
package progress

import (
	"fmt"
	"math"

	"github.com/pipelined/connector"
)

// Filter decides if connector is counted by indicator.
type Filter func(connector.Connector) bool

// All counts all connectors.
func All(connector.Connector) bool {
	return true
}

// Outputs counts only outputs.
func Outputs(c connector.Connector) bool {
	_, ok := c.(*connector.Output)
	return ok
}

// OutputsAndUnobservedInputs counts outputs and inputs without observers.
func OutputsAndUnobservedInputs(c connector.Connector) bool {
	if Outputs(c) {
		return true
	}
	in, ok := c.(connector.InputConnector)
	return ok && len(in.Observers()) == 0
}

// Progress of the change.
type Progress struct {
	// Max is the number of connectors involved in the change.
	Max int
	// Done is the number of connectors which finished.
	Done int
	// Message is empty unless indicator was created with a message. Then
	// it names the connector which finished last.
	Message string
}

// Indicator implements connector.ProgressIndicator.
type Indicator struct {
	// Progress is the output of Progress value.
	Progress *connector.Output
	// Fraction is the output of progress between 0.0 and 1.0.
	Fraction *connector.Output
	// Percentage is the output of progress between 0 and 100.
	Percentage *connector.Output

	report  *connector.Input
	filter  Filter
	seen    map[connector.Connector]struct{}
	max     int
	message string
}

// New returns indicator attached to setters. Message is optional, if it's
// not empty, it's updated on every counted report.
func New(filter Filter, message string, setters ...connector.Endpoint) (*Indicator, error) {
	if filter == nil {
		filter = All
	}
	i := &Indicator{
		filter:  filter,
		seen:    make(map[connector.Connector]struct{}),
		message: message,
	}
	i.Progress = connector.NewOutput(i, i.progress, connector.WithCaching(false))
	i.Fraction = connector.NewOutput(i, i.fraction, connector.WithCaching(false))
	i.Percentage = connector.NewOutput(i, i.percentage, connector.WithCaching(false))
	i.report = connector.NewInput(i, i.finish,
		connector.WithName("Report"),
		connector.WithObservers(i.Progress, i.Fraction, i.Percentage),
	)
	for _, s := range setters {
		if err := i.Add(s); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Add attaches indicator to the setter. It's detached automatically
// after the setter reports its change.
func (i *Indicator) Add(setter connector.Endpoint) error {
	in, ok := setter.Connector().(connector.InputConnector)
	if !ok {
		return fmt.Errorf("%w: %v is not an input", connector.ErrConnectionType, setter.Connector().Name())
	}
	in.SetProgressIndicator(i)
	return nil
}

// Announce counts connector if filter accepts it.
func (i *Indicator) Announce(c connector.Connector) {
	c = c.Connector()
	if !i.filter(c) {
		return
	}
	i.seen[c] = struct{}{}
	if len(i.seen) > i.max {
		i.max = len(i.seen)
	}
}

// Report marks connector as done if filter accepts it. Outputs of
// indicator are notified on every report.
func (i *Indicator) Report(c connector.Connector) {
	if i.report == nil {
		return
	}
	i.report.Set(c.Connector())
}

func (i *Indicator) finish(c connector.Connector) {
	if !i.filter(c) {
		return
	}
	if _, ok := i.seen[c]; !ok {
		return
	}
	delete(i.seen, c)
	if i.message != "" {
		i.message = fmt.Sprintf("%s has just finished", c.Name())
	}
}

// Value returns current progress.
func (i *Indicator) Value() Progress {
	return Progress{
		Max:     i.max,
		Done:    i.max - len(i.seen),
		Message: i.message,
	}
}

// Float returns progress between 0.0 and 1.0. It's 0.0 if nothing was
// announced.
func (i *Indicator) Float() float64 {
	if i.max == 0 {
		return 0.0
	}
	return 1.0 - float64(len(i.seen))/float64(i.max)
}

// Percent returns rounded progress between 0 and 100.
func (i *Indicator) Percent() int {
	return int(math.Round(100 * i.Float()))
}

func (i *Indicator) progress() Progress {
	return i.Value()
}

func (i *Indicator) fraction() float64 {
	return i.Float()
}

func (i *Indicator) percentage() int {
	return i.Percent()
}

// Connectors returns all connectors of indicator.
func (i *Indicator) Connectors() []connector.Connector {
	if i.report == nil {
		return nil
	}
	return []connector.Connector{i.Progress, i.Fraction, i.Percentage, i.report}
}

// Destroy disconnects and destroys connectors of indicator.
func (i *Indicator) Destroy() error {
	err := connector.DestroyConnectors(i)
	i.report = nil
	return err
}
