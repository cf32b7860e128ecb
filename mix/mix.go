// Package mix provides a mixer of signals. Any number of signal outputs can
// be connected to the mixer, result is the average of all inputs.
package mix

import (
	"errors"
	"fmt"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/multidata"
	"github.com/pipelined/connector/signal"
)

// ErrSampleRate is returned when mixed signals have different sample rates.
var ErrSampleRate = errors.New("sample rates don't match")

// Mixer averages connected signals.
type Mixer struct {
	// Output is the mixed signal.
	Output *connector.Output
	// NumberOfInputs returns the number of mixed signals.
	NumberOfInputs *connector.Output
	// AddInput accepts signals. Connected signal is replaced in place when
	// it changes.
	AddInput *connector.MultiInput

	inputs *multidata.Data
}

// New returns a new mixer. Options are applied to every connector.
func New(opts ...connector.Option) *Mixer {
	m := &Mixer{
		inputs: multidata.New(),
	}
	m.Output = connector.NewOutput(m, m.mix, with(opts, connector.WithName("Output"))...)
	m.NumberOfInputs = connector.NewOutput(m, m.numberOfInputs, opts...)
	m.AddInput = connector.NewMultiInput(m, m.addInput, m.removeInput,
		with(opts,
			connector.WithObservers(m.Output, m.NumberOfInputs),
			connector.WithReplace(m.replaceInput),
		)...,
	)
	return m
}

// Err returns the reason why mixed signal is empty.
func (m *Mixer) Err() error {
	return m.validate()
}

// addInput stores the signal. Validation is skipped while other inputs are
// expected to change.
func (m *Mixer) addInput(s signal.Signal) (string, error) {
	id := m.inputs.Add(s)
	return id, m.check()
}

func (m *Mixer) removeInput(id string) error {
	return m.inputs.Remove(id)
}

func (m *Mixer) replaceInput(id string, s signal.Signal) error {
	if err := m.inputs.Replace(id, s); err != nil {
		return err
	}
	return m.check()
}

func (m *Mixer) check() error {
	if m.AddInput.ExpectedInputs() > 1 {
		return nil
	}
	return m.validate()
}

// validate checks that non-empty signals share the sample rate.
func (m *Mixer) validate() error {
	sampleRate := 0
	for _, v := range m.inputs.Values() {
		s := v.(signal.Signal)
		if s.Empty() {
			continue
		}
		if sampleRate == 0 {
			sampleRate = s.SampleRate
			continue
		}
		if s.SampleRate != sampleRate {
			return fmt.Errorf("%w: %d and %d", ErrSampleRate, sampleRate, s.SampleRate)
		}
	}
	return nil
}

func (m *Mixer) numberOfInputs() int {
	return m.inputs.Len()
}

// mix returns the average of all inputs. Each sample is averaged over the
// signals long enough to have it, so shorter signals don't attenuate the
// tail of longer ones. Empty signal is returned if inputs are not valid.
func (m *Mixer) mix() signal.Signal {
	if m.validate() != nil {
		return signal.Signal{}
	}
	var (
		signals     []signal.Signal
		numChannels int
		size        int
		sampleRate  int
	)
	for _, v := range m.inputs.Values() {
		s := v.(signal.Signal)
		if s.Empty() {
			continue
		}
		signals = append(signals, s)
		sampleRate = s.SampleRate
		if s.NumChannels() > numChannels {
			numChannels = s.NumChannels()
		}
		if s.Data.Size() > size {
			size = s.Data.Size()
		}
	}
	if len(signals) == 0 {
		return signal.Signal{}
	}
	var sum, n float64
	result := signal.EmptyFloat64(numChannels, size)
	for c := 0; c < numChannels; c++ {
		for i := 0; i < size; i++ {
			sum, n = 0, 0
			for _, s := range signals {
				if c >= s.NumChannels() || i >= len(s.Data[c]) {
					continue
				}
				sum += s.Data[c][i]
				n++
			}
			if n > 0 {
				result[c][i] = sum / n
			}
		}
	}
	return signal.Signal{
		Data:       result,
		SampleRate: sampleRate,
	}
}

func with(opts []connector.Option, more ...connector.Option) []connector.Option {
	return append(opts[:len(opts):len(opts)], more...)
}
