// Released under an MIT license. See LICENSE.

// Package logger builds the zerolog logger used for xda diagnostics.
// Diagnostics never appear in a script's output log.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/michaelmacinnis/xda/internal/system/config"
)

// New creates a logger from c. The returned closer releases any log file.
func New(c config.Logging) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("invalid log level '%s': %w", c.Level, err)
	}

	var (
		closer io.Closer = nop{}
		output io.Writer
	)

	switch strings.ToLower(c.Output) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	case "file":
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to open log file '%s': %w", c.File, err)
		}

		closer = f
		output = f
	default:
		return zerolog.Nop(), nil, fmt.Errorf("invalid log output '%s'", c.Output)
	}

	return Writer(output, c.Format, level), closer, nil
}

// Writer creates a logger that writes to w at level.
func Writer(w io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if strings.ToLower(format) == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    true,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

type nop struct{}

func (nop) Close() error {
	return nil
}
