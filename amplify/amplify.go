// Package amplify provides a connector-bearing amplifier of signals.
package amplify

import (
	"github.com/pipelined/connector"
	"github.com/pipelined/connector/signal"
)

// Amplifier multiplies every sample of input signal by a factor.
type Amplifier struct {
	Output *connector.Output

	SetInput  *connector.Input
	SetFactor *connector.Input

	input  signal.Signal
	factor float64
}

// New returns amplifier with unity factor.
func New(opts ...connector.Option) *Amplifier {
	a := &Amplifier{factor: 1}
	a.Output = connector.NewOutput(a, a.output, opts...)
	a.SetInput = connector.NewInput(a, a.setInput, with(opts, connector.WithObservers(a.Output))...)
	a.SetFactor = connector.NewInput(a, a.setFactor, with(opts,
		connector.WithObservers(a.Output),
		connector.WithType(connector.Of(0.0, 0)),
	)...)
	return a
}

func with(opts []connector.Option, more ...connector.Option) []connector.Option {
	return append(opts[:len(opts):len(opts)], more...)
}

func (a *Amplifier) output() signal.Signal {
	data := signal.EmptyFloat64(a.input.NumChannels(), a.input.Data.Size())
	for c := range a.input.Data {
		for i, v := range a.input.Data[c] {
			data[c][i] = v * a.factor
		}
	}
	return signal.Signal{
		Data:       data,
		SampleRate: a.input.SampleRate,
	}
}

func (a *Amplifier) setInput(s signal.Signal) {
	a.input = s
}

func (a *Amplifier) setFactor(f float64) {
	a.factor = f
}
