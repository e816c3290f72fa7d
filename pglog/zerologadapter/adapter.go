// Package zerologadapter adapts a github.com/rs/zerolog.Logger to pglog.Logger.
package zerologadapter

import "github.com/rs/zerolog"

// Logger wraps a zerolog.Logger so it can be installed via pglog.SetLogger.
type Logger struct {
	logger zerolog.Logger
}

// NewLogger returns a pglog.Logger backed by logger.
func NewLogger(logger zerolog.Logger) *Logger {
	return &Logger{logger: logger.With().Str("module", "pgwirecodec").Logger()}
}

// Warn implements pglog.Logger.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.logger.Warn().Fields(fields).Msg(msg)
}
