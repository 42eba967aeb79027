// SPDX-License-Identifier: EPL-2.0

// Package commands implements the feaplot command line.
package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dinesh-batta/AaltoASR/featio"
	"github.com/dinesh-batta/AaltoASR/internal/plot"
)

type options struct {
	dims       []int
	dim        int
	output     string
	title      string
	firstFrame int
	width      int
	height     int
}

// NewRootCommand builds the feaplot command.
func NewRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "feaplot [flags] FILE",
		Short: "Plot dimensions of a raw feature file",
		Long: `feaplot reads features written by feacat --raw-output and draws the
selected dimensions against the frame index as a PNG.

Files written with --header carry their dimension. For files without a
header pass it with --dim.

Examples:
  feacat -c mfcc.yaml --raw-output -H utt01.wav > utt01.fea
  feaplot --dims 0,1,2 -o utt01.png utt01.fea
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotFile(args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&opts.dims, "dims", []int{0}, "feature dimensions to plot")
	flags.IntVar(&opts.dim, "dim", 0, "feature dimension of a file without header")
	flags.StringVarP(&opts.output, "output", "o", "", "PNG file to write (required)")
	flags.StringVar(&opts.title, "title", "", "chart title (default: file name)")
	flags.IntVarP(&opts.firstFrame, "start-frame", "s", 0, "index of the first frame in the file")
	flags.IntVar(&opts.width, "width", 1200, "image width in pixels")
	flags.IntVar(&opts.height, "height", 600, "image height in pixels")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func plotFile(path string, opts options) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open features: %w", err)
	}
	defer f.Close()

	dim := opts.dim
	if dim == 0 {
		if dim, err = featio.ReadHeader(f); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	rr, err := featio.NewRawReader(f, dim)
	if err != nil {
		return err
	}
	frames, err := rr.ReadAll()
	if err != nil && !errors.Is(err, featio.ErrTruncated) {
		return fmt.Errorf("%s: %w", path, err)
	}
	if errors.Is(err, featio.ErrTruncated) {
		fmt.Fprintf(os.Stderr, "Warning: %s ends inside a frame, plotting %d complete frames\n", path, len(frames))
	}

	title := opts.title
	if title == "" {
		title = filepath.Base(path)
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	if err := plot.Render(out, frames, opts.firstFrame, plot.Options{
		Title:  title,
		Dims:   opts.dims,
		Width:  opts.width,
		Height: opts.height,
	}); err != nil {
		out.Close()
		os.Remove(opts.output)
		return err
	}
	return out.Close()
}

// Execute runs feaplot with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}
