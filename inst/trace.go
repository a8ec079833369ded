package inst

import (
	"context"
	"log/slog"
)

// LevelTrace sits below slog.LevelDebug and is used for per-byte output.
const LevelTrace slog.Level = slog.LevelDebug - 4

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}
