// Package wav provides connector-bearing reader and writer of wav files.
package wav

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/signal"
)

const (
	// pcm is the wav audio format of written files.
	pcm = 1
	// bufferSize is the number of frames decoded at once.
	bufferSize = 512
)

var (
	// ErrUnsupportedBitDepth is returned when unsupported bit depth is used.
	ErrUnsupportedBitDepth = errors.New("only 16 and 32 bit depth is supported")
	// ErrInvalidFile is returned when file is not a valid wav.
	ErrInvalidFile = errors.New("wav is not valid")
	// ErrNoPath is returned when signal is written before the path is set.
	ErrNoPath = errors.New("path is not set")
)

type (
	// Reader decodes wav file when the path is set.
	Reader struct {
		// Signal is the content of the file.
		Signal *connector.Output
		// BitDepth is the bit depth of the file.
		BitDepth *connector.Output

		SetPath *connector.Input

		path     string
		signal   signal.Signal
		bitDepth signal.BitDepth
	}

	// Writer encodes the signal into wav file every time the signal is
	// set.
	Writer struct {
		SetPath     *connector.Input
		SetBitDepth *connector.Input
		SetSignal   *connector.Input

		path     string
		bitDepth signal.BitDepth
		written  int
		err      error
	}
)

// NewReader returns a reader without the file.
func NewReader(opts ...connector.Option) *Reader {
	r := &Reader{}
	r.Signal = connector.NewOutput(r, r.output, with(opts, connector.WithName("Signal"))...)
	r.BitDepth = connector.NewOutput(r, r.outputBitDepth, with(opts, connector.WithName("BitDepth"))...)
	r.SetPath = connector.NewInput(r, r.setPath, with(opts, connector.WithObservers(r.Signal, r.BitDepth))...)
	return r
}

// NewWriter returns a writer of 16 bit files.
func NewWriter(opts ...connector.Option) *Writer {
	w := &Writer{bitDepth: signal.BitDepth16}
	w.SetPath = connector.NewInput(w, w.setPath, opts...)
	w.SetBitDepth = connector.NewInput(w, w.setBitDepth, opts...)
	w.SetSignal = connector.NewInput(w, w.write, with(opts, connector.WithName("SetSignal"))...)
	return w
}

func with(opts []connector.Option, more ...connector.Option) []connector.Option {
	return append(opts[:len(opts):len(opts)], more...)
}

// Path returns the path of the last read file.
func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) output() signal.Signal {
	return r.signal
}

func (r *Reader) outputBitDepth() int {
	return int(r.bitDepth)
}

// setPath reads the file. Previous content is dropped if file cannot be
// read.
func (r *Reader) setPath(path string) error {
	r.path, r.signal, r.bitDepth = path, signal.Signal{}, 0
	s, bitDepth, err := read(path)
	if err != nil {
		return err
	}
	r.signal, r.bitDepth = s, bitDepth
	return nil
}

func read(path string) (signal.Signal, signal.BitDepth, error) {
	file, err := os.Open(path)
	if err != nil {
		return signal.Signal{}, 0, err
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return signal.Signal{}, 0, fmt.Errorf("%w: %v", ErrInvalidFile, path)
	}
	bitDepth := signal.BitDepth(decoder.BitDepth)
	if bitDepth != signal.BitDepth16 && bitDepth != signal.BitDepth32 {
		return signal.Signal{}, 0, ErrUnsupportedBitDepth
	}
	numChannels := decoder.Format().NumChannels
	ib := &audio.IntBuffer{
		Format:         decoder.Format(),
		Data:           make([]int, bufferSize*numChannels),
		SourceBitDepth: int(decoder.BitDepth),
	}
	data := signal.EmptyFloat64(numChannels, 0)
	for {
		readSamples, err := decoder.PCMBuffer(ib)
		if err != nil {
			return signal.Signal{}, 0, err
		}
		if readSamples == 0 {
			break
		}
		data = data.Append(signal.InterInt{
			Data:        ib.Data[:readSamples],
			NumChannels: numChannels,
			BitDepth:    bitDepth,
		}.AsFloat64())
	}
	return signal.Signal{
		Data:       data,
		SampleRate: int(decoder.SampleRate),
	}, bitDepth, nil
}

// Written returns the number of files written.
func (w *Writer) Written() int {
	return w.written
}

// Err returns the error of the last write.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) setPath(path string) {
	w.path = path
}

func (w *Writer) setBitDepth(bitDepth int) error {
	b := signal.BitDepth(bitDepth)
	if b != signal.BitDepth16 && b != signal.BitDepth32 {
		return ErrUnsupportedBitDepth
	}
	w.bitDepth = b
	return nil
}

// write encodes s into the file. Empty signal is not written.
func (w *Writer) write(s signal.Signal) error {
	w.err = w.encode(s)
	return w.err
}

func (w *Writer) encode(s signal.Signal) error {
	if s.Empty() {
		return nil
	}
	if w.path == "" {
		return ErrNoPath
	}
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	e := wav.NewEncoder(f, s.SampleRate, int(w.bitDepth), s.NumChannels(), pcm)
	ib := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: s.NumChannels(),
			SampleRate:  s.SampleRate,
		},
		Data:           s.Data.AsInterInt(w.bitDepth),
		SourceBitDepth: int(w.bitDepth),
	}
	if err := e.Write(ib); err != nil {
		f.Close()
		return err
	}
	if err := e.Close(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	w.written++
	return nil
}
