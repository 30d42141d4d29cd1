// Package server renders over HTTP: whole images as PNG, or row by row over
// a websocket for progressive previews.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/willbeason/mandelbrot/pkg/mandelbrot"
	"github.com/willbeason/mandelbrot/pkg/output"
	"github.com/willbeason/mandelbrot/pkg/params"
	"github.com/willbeason/mandelbrot/pkg/pixel"
)

// DefaultMaxPixels bounds the pixels of one request, supersampling included.
const DefaultMaxPixels = 16 << 20

// Options configures a Server. The zero value is usable.
type Options struct {
	// MaxPixels rejects larger requests; 0 means DefaultMaxPixels.
	MaxPixels int64

	// Workers is the render goroutine count of every request; 0 means one
	// per CPU. Requests cannot choose their own.
	Workers int

	// OriginPatterns lists hosts allowed to open cross origin websockets.
	OriginPatterns []string

	// Logger defaults to mandelbrot.Logger().
	Logger *slog.Logger
}

// Server serves
//
//	GET /render?<params>  one PNG image
//	GET /ws?<params>      a websocket carrying one binary message per row
//
// where <params> are named like the command line flags.
type Server struct {
	opts Options
	log  *slog.Logger
	mux  *http.ServeMux
}

// New returns a Server ready to be used as an http.Handler.
func New(opts Options) *Server {
	if opts.MaxPixels <= 0 {
		opts.MaxPixels = DefaultMaxPixels
	}
	log := opts.Logger
	if log == nil {
		log = mandelbrot.Logger()
	}

	s := &Server{opts: opts, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /render", s.handleRender)
	s.mux.HandleFunc("GET /ws", s.handleWebsocket)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		shutdownErr <- srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErr
}

func (s *Server) request(r *http.Request) (params.Params, mandelbrot.Config[float64], error) {
	p, err := params.FromQuery(r.URL.Query())
	if err != nil {
		return params.Params{}, mandelbrot.Config[float64]{}, err
	}
	p.Workers = s.opts.Workers

	// Compared in float64 so absurd sizes cannot overflow.
	ss := float64(p.Supersample)
	if float64(p.Width)*float64(p.Height)*ss*ss > float64(s.opts.MaxPixels) {
		return params.Params{}, mandelbrot.Config[float64]{},
			fmt.Errorf("%w: %dx%d at supersample %d is over %d pixels", params.ErrInvalidParams, p.Width, p.Height, p.Supersample, s.opts.MaxPixels)
	}

	cfg, err := p.Config()
	if err != nil {
		return params.Params{}, mandelbrot.Config[float64]{}, err
	}
	return p, cfg, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	p, cfg, err := s.request(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	buf, err := mandelbrot.RenderContext(r.Context(), cfg)
	if err != nil {
		s.log.Debug("render abandoned", "error", err)
		return
	}

	img, err := output.Downsample(buf, p.Supersample)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := output.Encode(w, img, output.PNG); err != nil {
		s.log.Warn("writing png", "error", err)
		return
	}
	s.log.Info("rendered", "width", p.Width, "height", p.Height, "elapsed", time.Since(start))
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	p, cfg, err := s.request(r)
	// Downsampling needs the whole image.
	if err == nil && p.Supersample != 1 {
		err = fmt.Errorf("%w: supersample is not supported when streaming", params.ErrInvalidParams)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.opts.OriginPatterns,
	})
	if err != nil {
		s.log.Warn("websocket accept", "error", err)
		return
	}
	defer c.CloseNow()

	// CloseRead cancels ctx once the client closes or misbehaves.
	ctx, cancel := context.WithCancel(c.CloseRead(r.Context()))
	defer cancel()

	var (
		once     sync.Once
		writeErr error
	)
	start := time.Now()
	_, err = mandelbrot.RenderRows(ctx, cfg, func(y int, row []pixel.Pixel) {
		if err := c.Write(ctx, websocket.MessageBinary, EncodeRow(y, row)); err != nil {
			once.Do(func() {
				writeErr = err
				cancel()
			})
		}
	})
	if writeErr != nil {
		s.log.Debug("streaming rows", "error", writeErr)
		return
	}
	if err != nil {
		s.log.Debug("stream abandoned", "error", err)
		return
	}

	if err := c.Close(websocket.StatusNormalClosure, "render finished"); err != nil {
		s.log.Debug("websocket close", "error", err)
		return
	}
	s.log.Info("streamed", "width", p.Width, "height", p.Height, "elapsed", time.Since(start))
}
