package example

import (
	"github.com/pipelined/connector"
	"github.com/pipelined/connector/amplify"
	"github.com/pipelined/connector/generator"
	"github.com/pipelined/connector/wav"
)

// Example 2:
//		Generate a sine tone
//		Change all its parameters at once
// 		Save result into .wav file
//
// NOTE: SetMultipleValues announces all changes before the first one is
// made, so the file is written only once.
func two(outPath string) int {
	sine := generator.NewSine()
	amp := amplify.New()
	wavWriter := wav.NewWriter()
	check(wavWriter.SetPath.Set(outPath))
	check(wavWriter.SetBitDepth.Set(32))

	check(connector.Connect(sine.Signal, amp.SetInput))
	check(connector.Connect(amp.Output, wavWriter.SetSignal))

	check(connector.SetMultipleValues([]connector.Value{
		{Setter: sine.SetFrequency, Value: 880},
		{Setter: sine.SetSampleRate, Value: 48000},
		{Setter: sine.SetLength, Value: 24000},
		{Setter: amp.SetFactor, Value: 0.25},
	}, nil))
	return wavWriter.Written()
}
