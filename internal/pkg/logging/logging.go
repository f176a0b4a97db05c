// Package logging configures the process-wide slog logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const serviceName = "herbal-id"

var ErrUnknownLevel = errors.New("unknown log level")

// levels is the only list of accepted level names. Config validation and
// SetupLogger both go through ParseLevel.
var levels = []struct {
	name  string
	level slog.Level
}{
	{"debug", slog.LevelDebug},
	{"info", slog.LevelInfo},
	{"warn", slog.LevelWarn},
	{"warning", slog.LevelWarn},
	{"error", slog.LevelError},
}

// ParseLevel maps a level name, in any case, to its slog level. An empty
// name is info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	for _, l := range levels {
		if strings.EqualFold(name, l.name) {
			return l.level, nil
		}
	}
	return slog.LevelInfo, fmt.Errorf("%w %q (want one of %s)", ErrUnknownLevel, name, LevelNames())
}

// LevelNames lists the accepted names for error messages.
func LevelNames() string {
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.name
	}
	return strings.Join(names, ", ")
}

// SetupLogger installs the default logger: JSON records in production, text
// elsewhere. Every record carries the service name.
func SetupLogger(appEnv, logLevel string, out io.Writer) error {
	level, err := ParseLevel(logLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == "production" {
		handler = slog.NewJSONHandler(out, opts)
	}

	slog.SetDefault(slog.New(handler).With("service", serviceName))
	return nil
}
