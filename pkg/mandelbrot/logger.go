package mandelbrot

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record before it is formatted.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes render logs to l; nil turns logging back off, which is
// also the starting state. It may be called while renders are running.
//
// Each render writes a debug record with its viewport and worker count when it
// starts, and another with the elapsed time when it finishes or is cancelled.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger is the logger renders write to. A server built without its own
// logger uses it as well.
func Logger() *slog.Logger {
	return current.Load()
}
