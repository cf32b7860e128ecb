// Package signal provides the payload passed between audio connectors:
//	- non-interleaved float64 buffers with their sample rate;
//	- conversion from and to interleaved int samples of given bit depth.
package signal

import (
	"math"
	"time"
)

// Float64 is a non-interleaved float64 buffer.
type Float64 [][]float64

// Signal is a buffer with its sample rate.
type Signal struct {
	Data       Float64
	SampleRate int
}

const (
	// BitDepth8 is 8 bit depth.
	BitDepth8 = BitDepth(8)
	// BitDepth16 is 16 bit depth.
	BitDepth16 = BitDepth(16)
	// BitDepth24 is 24 bit depth.
	BitDepth24 = BitDepth(24)
	// BitDepth32 is 32 bit depth.
	BitDepth32 = BitDepth(32)
)

// BitDepth of int samples.
type BitDepth int

// scale returns the maximum absolute value of sample.
func (b BitDepth) scale() float64 {
	switch b {
	case BitDepth8:
		return math.MaxInt8
	case BitDepth16:
		return math.MaxInt16
	case BitDepth24:
		return 1<<23 - 1
	case BitDepth32:
		return math.MaxInt32
	default:
		return 1
	}
}

// InterInt is an interleaved int buffer.
type InterInt struct {
	Data        []int
	NumChannels int
	BitDepth
}

// AsFloat64 converts interleaved ints into float64 buffer. Samples are
// scaled into [-1, 1] according to bit depth. Last frame is padded with
// zeros if data is not aligned to number of channels.
func (ints InterInt) AsFloat64() Float64 {
	if ints.Data == nil || ints.NumChannels == 0 {
		return nil
	}
	size := int(math.Ceil(float64(len(ints.Data)) / float64(ints.NumChannels)))
	scale := ints.BitDepth.scale()
	floats := EmptyFloat64(ints.NumChannels, size)
	for i, v := range ints.Data {
		floats[i%ints.NumChannels][i/ints.NumChannels] = float64(v) / scale
	}
	return floats
}

// AsInterInt converts float64 buffer into interleaved ints of bit depth.
// Samples out of [-1, 1] are clipped, values are rounded to the nearest int.
func (floats Float64) AsInterInt(bitDepth BitDepth) []int {
	numChannels := floats.NumChannels()
	if numChannels == 0 {
		return nil
	}
	scale := bitDepth.scale()
	ints := make([]int, floats.Size()*numChannels)
	for c := range floats {
		for i, v := range floats[c] {
			ints[i*numChannels+c] = int(math.Round(math.Max(-1, math.Min(1, v)) * scale))
		}
	}
	return ints
}

// EmptyFloat64 returns a buffer of zeros.
func EmptyFloat64(numChannels int, size int) Float64 {
	result := make([][]float64, numChannels)
	for i := range result {
		result[i] = make([]float64, size)
	}
	return result
}

// NumChannels returns number of channels.
func (floats Float64) NumChannels() int {
	return len(floats)
}

// Size returns number of samples per channel.
func (floats Float64) Size() int {
	if floats.NumChannels() == 0 {
		return 0
	}
	return len(floats[0])
}

// Append appends source to the buffer. New buffer is returned if floats is
// nil. Missing channels are added and padded with silence.
func (floats Float64) Append(source Float64) Float64 {
	if floats == nil {
		floats = make([][]float64, source.NumChannels())
		for i := range floats {
			floats[i] = make([]float64, 0, source.Size())
		}
	}
	if size := floats.Size(); floats.NumChannels() < source.NumChannels() {
		for i := floats.NumChannels(); i < source.NumChannels(); i++ {
			floats = append(floats, make([]float64, size, size+source.Size()))
		}
	}
	for i := range source {
		floats[i] = append(floats[i], source[i]...)
	}
	return floats
}

// Slice returns a copy of length samples from start position. The copy is
// shorter if buffer doesn't have enough samples. Nil is returned if start
// is out of buffer.
func (floats Float64) Slice(start int, length int) Float64 {
	if floats == nil || start >= floats.Size() || start < 0 {
		return nil
	}
	end := start + length
	if end > floats.Size() {
		end = floats.Size()
	}
	result := make([][]float64, floats.NumChannels())
	for i := range floats {
		result[i] = append([]float64(nil), floats[i][start:end]...)
	}
	return result
}

// DurationOf returns time duration of samples at sample rate.
func DurationOf(sampleRate int, samples int) time.Duration {
	if sampleRate == 0 {
		return 0
	}
	return time.Duration(float64(samples) / float64(sampleRate) * float64(time.Second))
}

// Duration returns time duration of the signal.
func (s Signal) Duration() time.Duration {
	return DurationOf(s.SampleRate, s.Data.Size())
}

// NumChannels returns number of channels of the signal.
func (s Signal) NumChannels() int {
	return s.Data.NumChannels()
}

// Empty returns true if signal has no samples.
func (s Signal) Empty() bool {
	return s.Data.Size() == 0
}
