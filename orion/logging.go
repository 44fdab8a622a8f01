package orion

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel accepts debug, info, warn and error in any case.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", level)
	}
}

// ConfigureLogging installs a text handler on stderr as the default logger.
func ConfigureLogging(level string) error {
	slogLevel, err := ParseLogLevel(level)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: slogLevel == slog.LevelDebug,
	})

	slog.SetDefault(slog.New(handler))
	return nil
}
