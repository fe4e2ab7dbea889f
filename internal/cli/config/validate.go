package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputTable:
	default:
		return fmt.Errorf("%w: output %q (want text|json|table)", ErrInvalidConfig, c.Output)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: empty addr", ErrInvalidConfig)
	}

	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("%w: log level %q (want debug|info|warn|error)", ErrInvalidConfig, s)
}
