package logger

import (
	"io"
	"log/slog"
	"os"
	"planets-catalog/internal/shared/config"
)

func Init() {
	if config.GlobalConfig == nil {
		panic("config must be initialized before logger")
	}

	Setup(os.Stderr, config.GlobalConfig.Logging)

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized",
		"level", config.GlobalConfig.Logging.Level,
		"json_format", config.GlobalConfig.Logging.JSONFormat,
		"environment", config.GlobalConfig.Environment,
	)
}

// Setup installs the default slog logger writing to w. Stdout is reserved for
// the catalog report, so callers normally pass stderr.
func Setup(w io.Writer, logConfig config.LoggingConfig) *slog.Logger {
	var handler slog.Handler

	level := ParseLevel(logConfig.Level)

	if logConfig.JSONFormat {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
