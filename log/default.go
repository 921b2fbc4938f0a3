package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = Make(os.Stderr)
)

// Default returns the package-level logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLogger
}

// Config applies options to the package-level logger, replacing it.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLogger = defaultLogger.Wrap(opts...)
}

// Trace logs a message at Trace level to the package-level logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelTrace, msg, attrs...)
}

// Debug logs a message at Debug level to the package-level logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelDebug, msg, attrs...)
}

// Info logs a message at Info level to the package-level logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelInfo, msg, attrs...)
}

// Warn logs a message at Warn level to the package-level logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelWarn, msg, attrs...)
}

// Error logs a message at Error level to the package-level logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().log(context.Background(), LevelError, msg, attrs...)
}

// TraceContext logs at Trace level with the provided context.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs at Debug level with the provided context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelDebug, msg, attrs...)
}

// InfoContext logs at Info level with the provided context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelInfo, msg, attrs...)
}

// WarnContext logs at Warn level with the provided context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelWarn, msg, attrs...)
}

// ErrorContext logs at Error level with the provided context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, LevelError, msg, attrs...)
}
