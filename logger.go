package softrast

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards everything. Enabled returns false, so records are never formatted.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by softrast. By default, softrast logs nothing; pass nil to go back to that.
//
// Log levels used:
//   - [slog.LevelDebug]: model construction summaries
//   - [slog.LevelInfo]: window setup in package ebitenview
//   - [slog.LevelWarn]: skipped glTF primitives
//   - [slog.LevelError]: framebuffer or depth buffer allocation failures
//
// Example:
//
//	softrast.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently used by softrast.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
