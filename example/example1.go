package example

import (
	"github.com/pipelined/connector"
	"github.com/pipelined/connector/amplify"
	"github.com/pipelined/connector/generator"
	"github.com/pipelined/connector/wav"
)

// Example 1:
//		Generate a sine tone
//		Amplify it
//		Save it into .wav file every time it changes
func one(outPath string) int {
	sine := generator.NewSine()
	amp := amplify.New()
	wavWriter := wav.NewWriter()
	check(wavWriter.SetPath.Set(outPath))

	check(connector.Connect(sine.Signal, amp.SetInput))
	check(connector.Connect(amp.Output, wavWriter.SetSignal))

	// every change is written, 3 files in total
	check(amp.SetFactor.Set(0.5))
	check(sine.SetFrequency.Set(220))
	return wavWriter.Written()
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
