package main

import (
	"github.com/spf13/cobra"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		opts server.Options
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve renders over HTTP and websockets",
		Long: `GET /render?width=640&height=480&region=seahorse-valley responds with a PNG.
GET /ws with the same parameters streams rows as binary websocket messages:
a big endian uint32 row index followed by R, G and B bytes per pixel.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			opts.Logger = mandelbrot.Logger()
			return server.New(opts).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "address to listen on")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "render goroutines per request, 0 for one per CPU")
	cmd.Flags().Int64Var(&opts.MaxPixels, "max-pixels", server.DefaultMaxPixels, "largest render a request may ask for")
	cmd.Flags().StringSliceVar(&opts.OriginPatterns, "origin", nil, "host patterns allowed to open cross origin websockets")

	return cmd
}
