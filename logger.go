package convex

import (
	"log/slog"
	"sync/atomic"
)

// silent is the logger in effect until SetLogger installs another one.
var silent = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(silent)
}

// SetLogger routes the log records of convex, scene and plot to l.
// Nothing is logged by default; a nil l restores that.
//
// Records by level:
//   - [slog.LevelDebug]: every recomputation, with the resulting region
//   - [slog.LevelInfo]: half-planes committed interactively
//   - [slog.LevelWarn]: a region that could not be drawn this frame
//
// Example:
//
//	convex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return logger.Load()
}

// LogValue reports a region as a group of its chain sizes.
func (r Region) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("left", len(r.left)),
		slog.Int("right", len(r.right)),
		slog.Bool("empty", r.empty),
	)
}
