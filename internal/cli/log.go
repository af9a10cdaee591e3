// Package cli wires the treeview commands: view, demo, sessions, clean,
// cache and completion. Loggers travel through context.Context; --verbose
// lowers the level to debug and routes observability events to the log.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeview/pkg/observability"
)

// newLogger returns a timestamped logger filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs a completion line with the time since it was created.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports observability events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

// registerLogHooks routes view, session and cache events to l.
func registerLogHooks(l *log.Logger) {
	h := logHooks{logger: l.WithPrefix("hook")}
	observability.SetViewHooks(h)
	observability.SetSessionHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnViewStart(_ context.Context, runID string, nodeCount int) {
	h.logger.Debug("view start", "run", runID, "nodes", nodeCount)
}

func (h logHooks) OnViewComplete(_ context.Context, runID string, index int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("view failed", "run", runID, "elapsed", d.Round(time.Microsecond), "err", err)
		return
	}
	h.logger.Debug("view done", "run", runID, "index", index, "elapsed", d.Round(time.Microsecond))
}

func (h logHooks) OnLayoutComplete(_ context.Context, strategy string, nodeCount, overlaps int, d time.Duration) {
	h.logger.Debug("layout", "strategy", strategy, "nodes", nodeCount, "overlaps", overlaps, "elapsed", d.Round(time.Microsecond))
}

func (h logHooks) OnRenderComplete(_ context.Context, format, path string, size int64, d time.Duration, err error) {
	h.logger.Debug("render", "format", format, "path", path, "bytes", size, "elapsed", d.Round(time.Microsecond), "err", err)
}

func (h logHooks) OnLaunch(_ context.Context, path string, err error) {
	h.logger.Debug("launch", "path", path, "err", err)
}

func (h logHooks) OnIndexAssigned(_ context.Context, index int) {
	h.logger.Debug("index assigned", "index", index)
}

func (h logHooks) OnIndexRecorded(_ context.Context, index int) {
	h.logger.Debug("index recorded", "index", index)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ observability.ViewHooks    = logHooks{}
	_ observability.SessionHooks = logHooks{}
	_ observability.CacheHooks   = logHooks{}
)
