package main

import (
	"fmt"
	"image"
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/output"
	"github.com/willbeason/mandelbrot/pkg/params"
)

type animation struct {
	frames int
	step   uint32
	delay  int
}

func animateCmd() *cobra.Command {
	p := params.Default()
	p.Width, p.Height = 400, 300

	a := animation{frames: 50, step: 1, delay: 4}
	var path string

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Write an animated GIF adding iterations frame by frame",
		Long: `Each frame runs --step more iterations on every point, so the set
sharpens from a disc into its final shape. --iterations is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnimate(cmd, p, a, path)
		},
	}

	p.AddFlags(cmd.Flags())
	cmd.Flags().IntVar(&a.frames, "frames", a.frames, "number of frames")
	cmd.Flags().Uint32Var(&a.step, "step", a.step, "iterations added per frame")
	cmd.Flags().IntVar(&a.delay, "delay", a.delay, "frame delay in hundredths of a second")
	cmd.Flags().StringVarP(&path, flagOutput, "o", "mandelbrot.gif", "file to write")

	return cmd
}

func runAnimate(cmd *cobra.Command, p params.Params, a animation, path string) error {
	switch {
	case a.frames <= 0:
		return fmt.Errorf("--frames must be positive, got %d", a.frames)
	case a.step == 0:
		return fmt.Errorf("--step must be positive")
	case a.delay < 0:
		return fmt.Errorf("--delay must not be negative, got %d", a.delay)
	}

	cfg, err := p.Config()
	if err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	start := time.Now()
	m := mandelbrot.New(cfg)
	frames := make([]image.Image, 0, a.frames)
	for i := 0; i < a.frames; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		m.RunIterations(a.step)
		frame, err := output.Downsample(m.Pixels(), p.Supersample)
		if err != nil {
			return err
		}
		frames = append(frames, frame)
	}

	if err := output.WriteAnimation(path, frames, a.delay); err != nil {
		return err
	}

	printer().Fprintf(cmd.OutOrStdout(), "wrote %s: %d frames of %d×%d pixels up to %d iterations in %v\n",
		path, len(frames), p.Width, p.Height, m.Iterations(), time.Since(start).Round(time.Millisecond))
	return nil
}
