// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup points the global logger at w with a human-readable console format
// and the given level ("debug", "info", ...).
func Setup(w io.Writer, level string) error {
	return setup(w, level, false)
}

func setup(w io.Writer, level string, noColor bool) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: noColor}).
		With().Timestamp().Logger()
	return nil
}

// SetupFile is Setup for a log file path. An empty path logs to stderr when
// toStderr is set and discards everything otherwise (the terminal renderer
// owns the screen). The returned closer releases the file.
func SetupFile(path, level string, toStderr bool) (io.Closer, error) {
	if path == "" {
		w := io.Discard
		if toStderr {
			w = os.Stderr
		}
		return nopCloser{}, Setup(w, level)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if err := setup(f, level, true); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
