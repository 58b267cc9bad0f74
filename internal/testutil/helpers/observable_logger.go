package helpers

import (
	"github.com/douhashi/logira/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ObservableLogger is a logger implementation that captures logs for testing.
// Arguments are sanitized the same way as the production logger.
type ObservableLogger struct {
	sugar    *zap.SugaredLogger
	recorded *observer.ObservedLogs
}

// NewObservableLogger creates a new observable logger
func NewObservableLogger(level zapcore.Level) (*ObservableLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(level)
	return &ObservableLogger{
		sugar:    zap.New(core).Sugar(),
		recorded: recorded,
	}, recorded
}

// Debug logs a debug message
func (l *ObservableLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, logger.SanitizeArgs(keysAndValues...)...)
}

// Info logs an info message
func (l *ObservableLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, logger.SanitizeArgs(keysAndValues...)...)
}

// Warn logs a warning message
func (l *ObservableLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, logger.SanitizeArgs(keysAndValues...)...)
}

// Error logs an error message
func (l *ObservableLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, logger.SanitizeArgs(keysAndValues...)...)
}

// WithFields returns a new logger with additional fields
func (l *ObservableLogger) WithFields(keysAndValues ...interface{}) logger.Logger {
	return &ObservableLogger{
		sugar:    l.sugar.With(logger.SanitizeArgs(keysAndValues...)...),
		recorded: l.recorded,
	}
}

// Ensure ObservableLogger implements logger.Logger interface
var _ logger.Logger = (*ObservableLogger)(nil)
