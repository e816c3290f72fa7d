// Package logrusadapter adapts a github.com/sirupsen/logrus.FieldLogger to
// pglog.Logger.
package logrusadapter

import "github.com/sirupsen/logrus"

// Logger wraps a logrus.FieldLogger so it can be installed via
// pglog.SetLogger.
type Logger struct {
	logger logrus.FieldLogger
}

// NewLogger returns a pglog.Logger backed by logger.
func NewLogger(logger logrus.FieldLogger) *Logger {
	return &Logger{logger: logger.WithField("module", "pgwirecodec")}
}

// Warn implements pglog.Logger.
func (l *Logger) Warn(msg string, fields map[string]any) {
	l.logger.WithFields(logrus.Fields(fields)).Warn(msg)
}
