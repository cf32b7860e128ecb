package example

import (
	"github.com/pipelined/connector"
	"github.com/pipelined/connector/mix"
	"github.com/pipelined/connector/signal"
	"github.com/pipelined/connector/wav"
)

// Example 3:
//		Read two .wav files
//		Mix them
//		Save result into new .wav file
//
// NOTE: both wav files must have the same sample rate.
func three(inPath1, inPath2, outPath string) signal.Signal {
	wavReader1 := wav.NewReader()
	check(wavReader1.SetPath.Set(inPath1))
	wavReader2 := wav.NewReader()
	check(wavReader2.SetPath.Set(inPath2))

	mixer := mix.New()
	wavWriter := wav.NewWriter()
	check(wavWriter.SetPath.Set(outPath))
	check(connector.Connect(mixer.Output, wavWriter.SetSignal))

	// mixed signal is written once both files are added
	check(connector.DeactivateOutput(mixer.Output))
	check(connector.Connect(wavReader1.Signal, mixer.AddInput))
	check(connector.Connect(wavReader2.Signal, mixer.AddInput))
	check(mixer.Err())
	check(connector.ActivateOutput(mixer.Output))
	check(wavWriter.Err())
	return mixer.Output.Get().(signal.Signal)
}
