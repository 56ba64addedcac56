package config

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLogging points the default slog logger at a rotating JSON log
// file in the data directory. TRACKER_DEBUG lowers the level so the
// terminal view's message dumps are recorded.
func InitLogging() {
	level := slog.LevelInfo
	if os.Getenv("TRACKER_DEBUG") != "" {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})))
}
