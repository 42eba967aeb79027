// SPDX-License-Identifier: EPL-2.0

// Package commands implements the feacat command line.
package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	aku "github.com/dinesh-batta/AaltoASR"
	"github.com/dinesh-batta/AaltoASR/feature"
	"github.com/dinesh-batta/AaltoASR/featio"
	"github.com/dinesh-batta/AaltoASR/internal/config"
	"github.com/dinesh-batta/AaltoASR/internal/logging"
	"github.com/dinesh-batta/AaltoASR/noise"
	"github.com/dinesh-batta/AaltoASR/speaker"
)

// Exit codes.
const (
	ExitOK = iota
	ExitConfig
	ExitFailure
)

const outputBufferSize = 64 << 10

type app struct {
	opts     config.Options
	endFrame int
	verbose  bool

	stdout io.Writer
	stderr io.Writer
}

// NewRootCommand builds the feacat command. Flag defaults come from the
// environment through loader.
func NewRootCommand(loader config.Loader, stdout, stderr io.Writer) (*cobra.Command, error) {
	opts, err := loader.Load()
	if err != nil {
		return nil, err
	}
	a := &app{opts: opts, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "feacat [flags] FILE",
		Short: "Print acoustic features of an audio file",
		Long: `feacat computes feature vectors for the frames of an audio file and
writes them to stdout.

Output is text by default, one frame per line. With --raw-output every value
is a native-endian float32; --header prepends the vector dimension as a
native-endian int32.

Frames run from --start-frame to the end of the audio, or to --end-frame
inclusive when it is given. An end frame below the start frame reads the
frames backward. An end frame of 2147483647 also means the end of the audio.

Examples:
  # MFCCs as text
  feacat -c mfcc.yaml utt01.wav

  # raw features with header, frames 100..199, with noise
  feacat -c mfcc.yaml --raw-output -H -s 100 -e 199 -G 0.05 utt01.wav > utt01.fea

  # speaker adapted features
  feacat -c mfcc.yaml -S speakers.yaml -d spk01 -u utt01 utt01.wav
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return aku.ConfigError(fmt.Errorf("expected exactly one audio FILE, got %d arguments", len(args)))
			}
			return nil
		},
		RunE:          a.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return aku.ConfigError(err)
	})

	a.bindFlags(cmd.Flags())

	return cmd, nil
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.SortFlags = false
	flags.StringVarP(&a.opts.FeatureConfig, "config", "c", a.opts.FeatureConfig, "read feature configuration (YAML, required)")
	flags.StringVarP(&a.opts.WriteConfig, "write-config", "w", "", "write feature configuration")
	flags.BoolVar(&a.opts.RawOutput, "raw-output", false, "raw float output")
	flags.BoolVarP(&a.opts.Header, "header", "H", false, "write a header (feature dim, 32 bits) in raw output")
	flags.IntVarP(&a.opts.StartFrame, "start-frame", "s", 0, "audio start frame")
	flags.IntVarP(&a.endFrame, "end-frame", "e", 0, "audio end frame (default: end of audio)")
	flags.StringVarP(&a.opts.Speakers, "speakers", "S", "", "speaker configuration file")
	flags.StringVarP(&a.opts.SpeakerID, "speaker-id", "d", "", "speaker ID")
	flags.StringVarP(&a.opts.UtteranceID, "utterance-id", "u", "", "utterance ID")
	flags.Float64VarP(&a.opts.GaussianStd, "gaussian-std", "G", 0, "Gaussian noise std added to features")
	flags.Uint64Var(&a.opts.Seed, "seed", a.opts.Seed, "noise generator seed")
	flags.StringVarP(&a.opts.Output, "output", "o", a.opts.Output, `output file ("-" for stdout)`)
	flags.StringVar(&a.opts.LogLevel, "log-level", a.opts.LogLevel, "diagnostics level")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug diagnostics")
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	a.opts.Audio = args[0]
	if cmd.Flags().Changed("end-frame") {
		end := a.endFrame
		a.opts.EndFrame = &end
	}
	if a.verbose {
		a.opts.LogLevel = logrus.DebugLevel.String()
	}

	warnings, err := a.opts.Validate()
	if err != nil {
		return err
	}
	log, err := logging.New(a.stderr, a.opts.LogLevel)
	if err != nil {
		return aku.ConfigError(err)
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	fcfg, err := loadFeatureConfig(a.opts.FeatureConfig)
	if err != nil {
		return err
	}
	gen, err := feature.NewGenerator(fcfg)
	if err != nil {
		return aku.ConfigError(err)
	}
	if err := gen.OpenFile(a.opts.Audio); err != nil {
		return err
	}
	defer gen.Close()

	var overlay aku.Overlay
	if a.opts.Speakers != "" {
		sc := speaker.New(gen)
		if err := sc.LoadSpeakerFile(a.opts.Speakers); err != nil {
			return aku.ConfigError(err)
		}
		overlay = speaker.Overlay{Config: sc, SpeakerID: a.opts.SpeakerID, UtteranceID: a.opts.UtteranceID}
	}

	if a.opts.WriteConfig != "" {
		if err := writeFeatureConfig(a.opts.WriteConfig, fcfg); err != nil {
			return err
		}
	}

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()
	bw := bufio.NewWriterSize(out, outputBufferSize)

	log.WithFields(logrus.Fields{
		"audio":  a.opts.Audio,
		"config": a.opts.FeatureConfig,
		"mode":   a.opts.Mode().String(),
	}).Info("feacat starting")

	if _, err := aku.Run(&aku.RunContext{
		Generator: gen,
		Overlay:   overlay,
		Range:     a.opts.Range(),
		NoiseStd:  a.opts.GaussianStd,
		Noise:     noise.NewSource(a.opts.Seed),
		Encoder:   featio.NewEncoder(bw, a.opts.Mode()),
		Header:    a.opts.Header,
		Log:       log,
	}); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", featio.ErrWrite, err)
	}
	return closeOut()
}

func loadFeatureConfig(path string) (feature.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return feature.Config{}, aku.ConfigError(fmt.Errorf("read feature configuration: %w", err))
	}
	defer f.Close()

	cfg, err := feature.LoadConfig(f)
	if err != nil {
		return feature.Config{}, aku.ConfigError(fmt.Errorf("%s: %w", path, err))
	}
	return cfg, nil
}

func writeFeatureConfig(path string, cfg feature.Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	if err := cfg.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config file: %w", err)
	}
	return nil
}

// openOutput returns the feature sink and a close function that is safe to
// call more than once.
func (a *app) openOutput() (io.Writer, func() error, error) {
	if a.opts.Output == "" || a.opts.Output == config.StdStream {
		return a.stdout, func() error { return nil }, nil
	}

	f, err := os.Create(a.opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	closed := false
	return f, func() error {
		if closed {
			return nil
		}
		closed = true
		if err := f.Close(); err != nil {
			return fmt.Errorf("%w: %w", featio.ErrWrite, err)
		}
		return nil
	}, nil
}

// Run executes feacat with args and returns the process exit code.
func Run(args []string, loader config.Loader, stdout, stderr io.Writer) int {
	cmd, err := NewRootCommand(loader, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitConfig
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, aku.ErrConfig):
		fmt.Fprintf(stderr, "feacat: %v\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitConfig
	default:
		fmt.Fprintf(stderr, "exception: %v\n", err)
		return ExitFailure
	}
}

// Execute runs feacat with the process arguments and environment.
func Execute() int {
	return Run(os.Args[1:], config.Loader{}, os.Stdout, os.Stderr)
}
