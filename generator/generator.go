// Package generator provides sources of signals.
package generator

import (
	"math"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/signal"
)

// Sine generates a sine wave. Signal is computed when requested and is
// cached until one of the parameters changes.
type Sine struct {
	Signal *connector.Output

	SetFrequency   *connector.Input
	SetAmplitude   *connector.Input
	SetPhase       *connector.Input
	SetSampleRate  *connector.Input
	SetLength      *connector.Input
	SetNumChannels *connector.Input

	frequency   float64
	amplitude   float64
	phase       float64
	sampleRate  int
	length      int
	numChannels int
}

// NewSine returns generator of 1 second of 440 Hz mono signal with 44100
// sample rate.
func NewSine(opts ...connector.Option) *Sine {
	s := &Sine{
		frequency:   440,
		amplitude:   1,
		sampleRate:  44100,
		length:      44100,
		numChannels: 1,
	}
	number := connector.WithType(connector.Of(0.0, 0))
	s.Signal = connector.NewOutput(s, s.signal, with(opts, connector.WithCaching(true))...)
	observers := connector.WithObservers(s.Signal)
	s.SetFrequency = connector.NewInput(s, s.setFrequency, with(opts, observers, number)...)
	s.SetAmplitude = connector.NewInput(s, s.setAmplitude, with(opts, observers, number)...)
	s.SetPhase = connector.NewInput(s, s.setPhase, with(opts, observers, number)...)
	s.SetSampleRate = connector.NewInput(s, s.setSampleRate, with(opts, observers)...)
	s.SetLength = connector.NewInput(s, s.setLength, with(opts, observers)...)
	s.SetNumChannels = connector.NewInput(s, s.setNumChannels, with(opts, observers)...)
	return s
}

func with(opts []connector.Option, more ...connector.Option) []connector.Option {
	return append(opts[:len(opts):len(opts)], more...)
}

func (s *Sine) signal() signal.Signal {
	data := signal.EmptyFloat64(s.numChannels, s.length)
	if s.sampleRate > 0 {
		step := 2 * math.Pi * s.frequency / float64(s.sampleRate)
		for i := 0; i < s.length; i++ {
			v := s.amplitude * math.Sin(s.phase+step*float64(i))
			for c := range data {
				data[c][i] = v
			}
		}
	}
	return signal.Signal{
		Data:       data,
		SampleRate: s.sampleRate,
	}
}

func (s *Sine) setFrequency(f float64) {
	s.frequency = f
}

func (s *Sine) setAmplitude(a float64) {
	s.amplitude = a
}

// setPhase sets the phase of the first sample in radians.
func (s *Sine) setPhase(p float64) {
	s.phase = p
}

func (s *Sine) setSampleRate(sampleRate int) error {
	if sampleRate < 0 {
		return ErrNegative
	}
	s.sampleRate = sampleRate
	return nil
}

// setLength sets the number of samples.
func (s *Sine) setLength(length int) error {
	if length < 0 {
		return ErrNegative
	}
	s.length = length
	return nil
}

func (s *Sine) setNumChannels(numChannels int) error {
	if numChannels < 0 {
		return ErrNegative
	}
	s.numChannels = numChannels
	return nil
}
