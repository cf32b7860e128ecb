package signal_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pipelined/connector/signal"
)

func TestInterIntAsFloat64(t *testing.T) {
	tests := []struct {
		ints        []int
		numChannels int
		bitDepth    signal.BitDepth
		expected    signal.Float64
	}{
		{
			ints:        []int{1, 0, 1, 0, 1, 0, 1, 0},
			numChannels: 2,
			expected: signal.Float64{
				{1, 1, 1, 1},
				{0, 0, 0, 0},
			},
		},
		{
			ints:        []int{1, -1, 1, -1, 1},
			numChannels: 2,
			expected: signal.Float64{
				{1, 1, 1},
				{-1, -1, 0},
			},
		},
		{
			ints:        []int{math.MaxInt16, -math.MaxInt16},
			numChannels: 2,
			bitDepth:    signal.BitDepth16,
			expected: signal.Float64{
				{1},
				{-1},
			},
		},
		{
			ints:        []int{1 << 22},
			numChannels: 1,
			bitDepth:    signal.BitDepth24,
			expected: signal.Float64{
				{float64(1<<22) / float64(1<<23-1)},
			},
		},
		{
			ints:     nil,
			expected: nil,
		},
		{
			ints:     []int{1, 2, 3},
			expected: nil,
		},
		{
			ints:        []int{1, 1},
			numChannels: 3,
			expected: signal.Float64{
				{1},
				{1},
				{0},
			},
		},
	}

	for _, test := range tests {
		ints := signal.InterInt{
			Data:        test.ints,
			NumChannels: test.numChannels,
			BitDepth:    test.bitDepth,
		}
		assert.Equal(t, test.expected, ints.AsFloat64())
	}
}

func TestFloat64AsInterInt(t *testing.T) {
	tests := []struct {
		floats   signal.Float64
		bitDepth signal.BitDepth
		expected []int
	}{
		{
			floats: signal.Float64{
				{1, 1, 1},
				{0, 0, 0},
			},
			expected: []int{1, 0, 1, 0, 1, 0},
		},
		{
			floats: signal.Float64{
				{1},
				{-0.5},
			},
			bitDepth: signal.BitDepth16,
			expected: []int{math.MaxInt16, -16384},
		},
		{
			floats: signal.Float64{
				{2},
				{-2},
			},
			bitDepth: signal.BitDepth8,
			expected: []int{math.MaxInt8, -math.MaxInt8},
		},
		{
			floats:   nil,
			expected: nil,
		},
		{
			floats:   signal.Float64{},
			expected: nil,
		},
		{
			floats:   signal.Float64{{}, {}},
			expected: []int{},
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.floats.AsInterInt(test.bitDepth))
	}
}

func TestRoundTrip(t *testing.T) {
	floats := signal.Float64{
		{0.5, -0.25, 0},
		{-1, 1, 0.75},
	}
	ints := floats.AsInterInt(signal.BitDepth32)
	result := signal.InterInt{Data: ints, NumChannels: 2, BitDepth: signal.BitDepth32}.AsFloat64()
	for i := range floats {
		assert.InDeltaSlice(t, floats[i], result[i], 1e-9)
	}
}

func TestSlice(t *testing.T) {
	floats := signal.Float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
	}
	assert.Equal(t, signal.Float64{{2, 3}, {6, 7}}, floats.Slice(1, 2))
	assert.Equal(t, signal.Float64{{4}, {8}}, floats.Slice(3, 5))
	assert.Nil(t, floats.Slice(4, 1))
	assert.Nil(t, floats.Slice(-1, 1))

	// slice is a copy
	s := floats.Slice(0, 1)
	s[0][0] = 10
	assert.Equal(t, 1.0, floats[0][0])
}

func TestAppend(t *testing.T) {
	var floats signal.Float64
	floats = floats.Append(signal.Float64{{1}, {2}})
	floats = floats.Append(signal.Float64{{3}, {4}})
	assert.Equal(t, signal.Float64{{1, 3}, {2, 4}}, floats)
	assert.Equal(t, 2, floats.Size())
	assert.Equal(t, 2, floats.NumChannels())

	// missing channels are padded
	floats = signal.Float64{{1}}.Append(signal.Float64{{2}, {3}})
	assert.Equal(t, signal.Float64{{1, 2}, {0, 3}}, floats)
}

func TestSignal(t *testing.T) {
	s := signal.Signal{
		Data:       signal.EmptyFloat64(2, 22050),
		SampleRate: 44100,
	}
	assert.Equal(t, 500*time.Millisecond, s.Duration())
	assert.Equal(t, 2, s.NumChannels())
	assert.False(t, s.Empty())
	assert.True(t, signal.Signal{}.Empty())
	assert.Equal(t, time.Duration(0), signal.Signal{}.Duration())
}
