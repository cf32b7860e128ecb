package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/amplify"
	"github.com/pipelined/connector/generator"
	"github.com/pipelined/connector/progress"
	"github.com/pipelined/connector/wav"
)

type toneOptions struct {
	out         string
	frequency   float64
	gain        float64
	duration    time.Duration
	sampleRate  int
	numChannels int
	bitDepth    int
}

func toneCmd(a *app) *cobra.Command {
	var opts toneOptions

	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Render a sine tone into wav file",
		Long: `Render a sine tone into wav file.

The tone passes through generator, amplifier and writer:

  Sine.Signal -> Amplifier.SetInput
  Amplifier.Output -> Writer.SetSignal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTone(a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output wav file (required)")
	cmd.Flags().Float64VarP(&opts.frequency, "frequency", "f", 440, "frequency in Hz")
	cmd.Flags().Float64VarP(&opts.gain, "gain", "g", 0.5, "amplifier factor")
	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", time.Second, "length of the tone")
	cmd.Flags().IntVar(&opts.sampleRate, "sample-rate", 44100, "sample rate")
	cmd.Flags().IntVar(&opts.numChannels, "channels", 1, "number of channels")
	cmd.Flags().IntVar(&opts.bitDepth, "bit-depth", 16, "bit depth, 16 or 32")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runTone(a *app, opts toneOptions) error {
	if opts.sampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	g := generator.NewSine(a.options()...)
	amp := amplify.New(a.options()...)
	w := wav.NewWriter(a.options()...)

	err := connector.SetMultipleValues([]connector.Value{
		{Setter: g.SetFrequency, Value: opts.frequency},
		{Setter: g.SetSampleRate, Value: opts.sampleRate},
		{Setter: g.SetLength, Value: int(math.Round(opts.duration.Seconds() * float64(opts.sampleRate)))},
		{Setter: g.SetNumChannels, Value: opts.numChannels},
		{Setter: amp.SetFactor, Value: opts.gain},
		{Setter: w.SetPath, Value: opts.out},
		{Setter: w.SetBitDepth, Value: opts.bitDepth},
	}, nil)
	if err != nil {
		return err
	}

	// amplifier has no input yet, nothing is written
	if err := connector.Connect(amp.Output, w.SetSignal); err != nil {
		return err
	}
	i, err := progress.New(progress.All, "rendering", amp.SetInput)
	if err != nil {
		return err
	}
	defer i.Destroy()
	if err := watch(i, a.log); err != nil {
		return err
	}
	if err := connector.Connect(g.Signal, amp.SetInput); err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write %v: %w", opts.out, err)
	}
	if w.Written() == 0 {
		return errors.New("tone is empty")
	}
	a.log.WithField("path", opts.out).Info("tone is written")
	return nil
}
