package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/output"
	"github.com/willbeason/mandelbrot/pkg/params"
)

const (
	flagOutput = "output"
	flagFormat = "format"
)

func renderCmd() *cobra.Command {
	p := params.Default()
	var (
		path   string
		format output.Format
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one image to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, p, path, format)
		},
	}

	p.AddFlags(cmd.Flags())
	cmd.Flags().StringVarP(&path, flagOutput, "o", "mandelbrot.png", "file to write")
	cmd.Flags().Var(&format, flagFormat, "image format, default from the output file extension: png, gif, tiff, bmp, jpeg")

	return cmd
}

func runRender(cmd *cobra.Command, p params.Params, path string, format output.Format) error {
	cfg, err := p.Config()
	if err != nil {
		return err
	}
	if format == "" {
		if format, err = output.FormatFromPath(path); err != nil {
			return err
		}
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	start := time.Now()
	buf, err := mandelbrot.RenderContext(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	img, err := output.Downsample(buf, p.Supersample)
	if err != nil {
		return err
	}
	if err := output.WriteFile(path, img, format); err != nil {
		return err
	}

	printer().Fprintf(cmd.OutOrStdout(), "wrote %s: %d×%d pixels, %d points at %d iterations in %v\n",
		path, p.Width, p.Height, p.Pixels(), cfg.MaxIterations(), time.Since(start).Round(time.Millisecond))
	return nil
}
