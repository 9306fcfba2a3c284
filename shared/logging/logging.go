package logging

import (
	"os"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsole builds a human-readable logger at the given level.
// A nil w writes to stdout.
func NewConsole(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	if w == nil {
		w = zapcore.Lock(os.Stdout)
	}
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		w,
		level,
	)
	return zap.New(consoleCore)
}

// Teardown returns a func that flushes logger, warning through the logger itself if that fails.
func Teardown(logger *zap.Logger) func() {
	return func() {
		if err := logger.Sync(); err != nil {
			logger.Warn("failed to sync logger", zap.Error(err))
		}
	}
}

// Fields converts a loosely typed field map to zap fields, ordered by key.
func Fields(fields map[string]any) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
