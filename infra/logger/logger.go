package logger

import corelogger "github.com/kilianp07/zoa/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger discards every entry.
type NopLogger = corelogger.NopLogger

// New returns a Logger for the given component. The output format follows
// the APP_ENV variable unless Configure selected one explicitly.
func New(component string) Logger {
	return NewZerologLogger(component)
}
