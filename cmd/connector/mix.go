package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/mix"
	"github.com/pipelined/connector/progress"
	"github.com/pipelined/connector/wav"
)

func mixCmd(a *app) *cobra.Command {
	var (
		out      string
		bitDepth int
	)

	cmd := &cobra.Command{
		Use:   "mix [files...]",
		Short: "Mix wav files into one",
		Long: `Mix wav files into one. All files must have the same sample rate.
Samples are averaged over the files long enough to have them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMix(a, args, out, bitDepth)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output wav file (required)")
	cmd.Flags().IntVar(&bitDepth, "bit-depth", 16, "bit depth, 16 or 32")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runMix(a *app, paths []string, out string, bitDepth int) error {
	m := mix.New(a.options()...)
	w := wav.NewWriter(a.options()...)
	if err := w.SetPath.Set(out); err != nil {
		return err
	}
	if err := w.SetBitDepth.Set(bitDepth); err != nil {
		return err
	}
	if err := connector.Connect(m.Output, w.SetSignal); err != nil {
		return err
	}

	// mixed signal is written once, when all files are added
	if err := connector.DeactivateOutput(m.Output); err != nil {
		return err
	}
	for _, path := range paths {
		r := wav.NewReader(a.options()...)
		if err := r.SetPath.Set(path); err != nil {
			return err
		}
		if err := connector.Connect(r.Signal, m.AddInput); err != nil {
			return err
		}
	}
	if err := m.Err(); err != nil {
		return err
	}

	i, err := progress.New(progress.All, "mixing", w.SetSignal)
	if err != nil {
		return err
	}
	defer i.Destroy()
	if err := watch(i, a.log); err != nil {
		return err
	}
	if err := connector.ActivateOutput(m.Output); err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return fmt.Errorf("failed to write %v: %w", out, err)
	}
	if w.Written() == 0 {
		return errors.New("mix is empty")
	}
	a.log.WithFields(logrus.Fields{
		"path":   out,
		"inputs": m.NumberOfInputs.Get(),
	}).Info("mix is written")
	return nil
}
