package wlw

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"runtime"
	"time"
)

var (
	ErrNilWindow         = errors.New("window is nil")
	ErrNilTexture        = errors.New("texture is nil")
	ErrBackendInit       = errors.New("rendering backend failed to initialize")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelInfo}))

// Logger returns the logger wlw reports diagnostics through.
func Logger() *slog.Logger {
	return logger
}

// SetLogger replaces the logger wlw reports diagnostics through. Passing nil restores the default stderr logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: slog.LevelInfo}))
	}
	logger = l
}

// failIf logs msg at error level, attributed to the caller of failIf, when cond holds. It returns cond so that
// call sites can bail out with `if failIf(...) { return }`.
func failIf(cond bool, msg string, args ...any) bool {
	if !cond {
		return false
	}
	logAt(slog.LevelError, 3, msg, args...)
	return true
}

// warn logs a warning attributed to the caller of warn.
func warn(msg string, args ...any) {
	logAt(slog.LevelWarn, 3, msg, args...)
}

func logAt(level slog.Level, skip int, msg string, args ...any) {
	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}
