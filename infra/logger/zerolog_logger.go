package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	out    io.Writer = os.Stderr
	format string
	level  = zerolog.InfoLevel
)

// Configure sets the process wide level, format ("json" or "console") and
// destination used by loggers created afterwards. A nil writer keeps the
// current destination.
func Configure(lvl, fmtName string, w io.Writer) error {
	parsed := zerolog.InfoLevel
	if lvl != "" {
		var err error
		parsed, err = zerolog.ParseLevel(strings.ToLower(lvl))
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
	}
	switch fmtName {
	case "", "json", "console":
	default:
		return fmt.Errorf("unknown log format %s", fmtName)
	}
	mu.Lock()
	defer mu.Unlock()
	level = parsed
	format = fmtName
	if w != nil {
		out = w
	}
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. The console writer is used when
// configured or when APP_ENV=dev. All logs include the component field.
func NewZerologLogger(component string) Logger {
	mu.RLock()
	w, f, lvl := out, format, level
	mu.RUnlock()
	if f == "" && strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		f = "console"
	}
	if f == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(w).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Infow(msg string, fields map[string]any) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
