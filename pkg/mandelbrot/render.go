package mandelbrot

import (
	"context"
	"time"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
	"github.com/willbeason/mandelbrot/pkg/parallel"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// Render computes every pixel of cfg. The buffer holds Width×Height pixels in
// raster order and is identical for any worker count.
func Render[T complexnum.Float](cfg Config[T]) pixel.Buffer {
	// A background context is never cancelled, so there is no error to report.
	buf, _ := RenderRows(context.Background(), cfg, nil)
	return buf
}

// RenderContext is Render with cancellation checked between rows. On
// cancellation the partial buffer is returned with ctx.Err().
func RenderContext[T complexnum.Float](ctx context.Context, cfg Config[T]) (pixel.Buffer, error) {
	return RenderRows(ctx, cfg, nil)
}

// RenderRows is RenderContext that also calls onRow after each row is
// complete. onRow is called from the render goroutines, in no particular row
// order, and must not retain or modify row.
func RenderRows[T complexnum.Float](ctx context.Context, cfg Config[T], onRow func(y int, row []pixel.Pixel)) (pixel.Buffer, error) {
	vp := cfg.viewport
	buf := pixel.NewBuffer(vp.Width(), vp.Height())

	start := time.Now()
	log := Logger()
	log.DebugContext(ctx, "render started",
		"viewport", vp.String(),
		"maxIterations", cfg.maxIterations,
		"workers", cfg.workers)

	err := parallel.Rows(ctx, vp.Height(), cfg.workers, func(y int) {
		// Each worker owns whole rows of buf; no other goroutine touches them.
		row := buf.Row(y)
		for x := range row {
			row[x] = cfg.Pixel(x, y)
		}
		if onRow != nil {
			onRow(y, row)
		}
	})
	if err != nil {
		log.DebugContext(ctx, "render cancelled", "error", err, "elapsed", time.Since(start))
		return buf, err
	}

	log.DebugContext(ctx, "render finished", "pixels", len(buf.Pixels), "elapsed", time.Since(start))
	return buf, nil
}
