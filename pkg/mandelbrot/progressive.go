package mandelbrot

import (
	"context"
	"math"
	"time"

	"github.com/willbeason/mandelbrot/pkg/complexnum"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/parallel"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// Mandelbrot is a progressive render: it keeps the orbit of every pixel so
// more iterations can be added in steps, for example one animation frame per
// step. The configured iteration bound is ignored; the bound is the total
// number of iterations run so far.
//
// A Mandelbrot must not be used from several goroutines at once.
type Mandelbrot[T complexnum.Float] struct {
	cfg        Config[T]
	orbits     []escape.Orbit[T]
	constants  []complexnum.Number[T]
	iterations uint32
}

// New prepares a progressive render with no iterations run.
func New[T complexnum.Float](cfg Config[T]) *Mandelbrot[T] {
	vp := cfg.viewport
	m := &Mandelbrot[T]{
		cfg:       cfg,
		orbits:    make([]escape.Orbit[T], vp.Len()),
		constants: make([]complexnum.Number[T], vp.Len()),
	}

	for i := range m.orbits {
		x, y := vp.Point(i)
		m.orbits[i].Z, m.constants[i] = cfg.transform.Seed(vp.Coordinate(x, y))
	}
	return m
}

// Iterations is the total number of iterations run since New or Reset.
func (m *Mandelbrot[T]) Iterations() uint32 {
	return m.iterations
}

// RunIterations advances every orbit by n more iterations. Running n then k
// iterations gives the same result as a single render bounded at n+k.
func (m *Mandelbrot[T]) RunIterations(n uint32) {
	if n > math.MaxUint32-m.iterations {
		n = math.MaxUint32 - m.iterations
	}
	if n == 0 {
		return
	}

	start := time.Now()
	width := m.cfg.viewport.Width()

	// parallel.Rows only fails on cancellation.
	_ = parallel.Rows(context.Background(), m.cfg.viewport.Height(), m.cfg.workers, func(y int) {
		for i := y * width; i < (y+1)*width; i++ {
			m.orbits[i] = escape.Continue(m.orbits[i], m.constants[i], n, m.cfg.radius2)
		}
	})
	m.iterations += n

	Logger().Debug("iterations run", "step", n, "total", m.iterations, "elapsed", time.Since(start))
}

// Pixels colours the current state of every orbit.
func (m *Mandelbrot[T]) Pixels() pixel.Buffer {
	vp := m.cfg.viewport
	buf := pixel.NewBuffer(vp.Width(), vp.Height())

	_ = parallel.Rows(context.Background(), vp.Height(), m.cfg.workers, func(y int) {
		row := buf.Row(y)
		for x := range row {
			r := m.orbits[vp.Index(x, y)].Result()
			row[x].Color = m.cfg.scale.Color(r, m.iterations)
		}
	})
	return buf
}

// Reset discards all iterations run so far.
func (m *Mandelbrot[T]) Reset() {
	vp := m.cfg.viewport
	for i := range m.orbits {
		x, y := vp.Point(i)
		z0, _ := m.cfg.transform.Seed(vp.Coordinate(x, y))
		m.orbits[i] = escape.Orbit[T]{Z: z0}
	}
	m.iterations = 0
}
