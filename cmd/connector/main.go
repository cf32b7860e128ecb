package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/log"
	"github.com/pipelined/connector/progress"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app holds state shared by commands.
type app struct {
	configPath string
	debug      bool
	cfg        connector.Config
	log        *logrus.Logger
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "connector",
		Short: "Render audio with a graph of connected components",
		Long: `Connector builds a small graph of audio components and lets
changes flow through it. Every component recomputes only when one
of its inputs has changed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "yaml config file")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log graph changes")

	rootCmd.AddCommand(
		toneCmd(a),
		mixCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// init loads config and sets up the logger. Connectors log into the same
// logger, so errors during propagation are visible.
func (a *app) init(errOut io.Writer) error {
	a.cfg = connector.DefaultConfig()
	if a.configPath != "" {
		cfg, err := connector.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.cfg = connector.ConfigFromEnv(a.cfg)
	a.log = log.New(a.debug)
	a.log.SetOutput(errOut)
	a.cfg.Logger = a.log
	return nil
}

func (a *app) options() []connector.Option {
	return []connector.Option{connector.WithConfig(a.cfg)}
}

// progressLog writes progress into the log.
type progressLog struct {
	SetProgress *connector.Input
	log         logrus.FieldLogger
}

func newProgressLog(l logrus.FieldLogger) *progressLog {
	p := &progressLog{log: l}
	p.SetProgress = connector.NewInput(p, p.setProgress)
	return p
}

func (p *progressLog) setProgress(v progress.Progress) {
	if v.Max == 0 {
		return
	}
	p.log.WithFields(logrus.Fields{
		"done": v.Done,
		"max":  v.Max,
	}).Info(v.Message)
}

// watch logs the progress of indicator until it's destroyed.
func watch(i *progress.Indicator, l logrus.FieldLogger) error {
	return connector.Connect(i.Progress, newProgressLog(l).SetProgress)
}
