// Package zapadapter adapts a go.uber.org/zap.Logger to pglog.Logger.
package zapadapter

import "go.uber.org/zap"

// Logger wraps a zap.Logger so it can be installed via pglog.SetLogger.
type Logger struct {
	logger *zap.Logger
}

// NewLogger returns a pglog.Logger backed by logger.
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.With(zap.String("module", "pgwirecodec"))}
}

// Warn implements pglog.Logger.
func (l *Logger) Warn(msg string, fields map[string]any) {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	l.logger.Warn(msg, zapFields...)
}
