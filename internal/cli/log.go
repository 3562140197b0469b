package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered 12 nodes (3ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports render and document events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRenderStart(_ context.Context, renderID string, nodeCount int) {
	h.logger.Debug("render start", "render", renderID, "nodes", nodeCount)
}

func (h *logHooks) OnLayerComplete(_ context.Context, renderID string, layer, nodes, flushed int) {
	h.logger.Debug("layer", "render", renderID, "layer", layer, "nodes", nodes, "flushed", flushed)
}

func (h *logHooks) OnRenderComplete(_ context.Context, renderID string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "render", renderID, "rows", rows, "err", err)
		return
	}
	h.logger.Debug("render done", "render", renderID, "rows", rows, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load start", "path", path)
}

func (h *logHooks) OnLoadComplete(_ context.Context, path string, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("load done", "path", path, "nodes", nodeCount, "took", d.Round(time.Microsecond))
}
