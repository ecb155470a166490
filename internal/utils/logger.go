package utils

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

type ctxKey struct{}

// WithRequestID stores the request id on ctx for LogEvent.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// SetupLogger installs a JSON slog logger as the process default.
func SetupLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

// LogEvent writes a standardized event with module/action/request_id.
// Avoid logging sensitive payload; msg should be summarized.
func LogEvent(ctx context.Context, module, action, msg string, attrs ...any) {
	args := append([]any{
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", RequestID(ctx),
	}, attrs...)
	slog.InfoContext(ctx, msg, args...)
}

// LogError is LogEvent at error level with the error attached.
func LogError(ctx context.Context, module, action string, err error, attrs ...any) {
	args := append([]any{
		"module", strings.ToUpper(module),
		"action", action,
		"request_id", RequestID(ctx),
		"error", err,
	}, attrs...)
	slog.ErrorContext(ctx, "operation failed", args...)
}
