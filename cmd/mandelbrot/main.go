package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render escape-time images of the Mandelbrot set",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool(flagVerbose)
			setupLogging(cmd, verbose)
		},
	}

	cmd.PersistentFlags().BoolP(flagVerbose, "v", false, "log render progress")

	cmd.AddCommand(renderCmd(), animateCmd(), serveCmd(), regionsCmd())

	return cmd
}

const flagVerbose = "verbose"

func setupLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	mandelbrot.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
}

// printer writes human readable summaries with grouped digits.
func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		stop()
		os.Exit(1)
	}
}
