// Package log provides the optional debug-tracing hook used by the quadtree
// package. It wraps zap the way zeusync's observability logger does, but
// trims the surface to the handful of levels this module actually emits.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level selects which log lines a Logger will emit.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Field is a structured key/value pair attached to a log line.
type Field = zap.Field

// String builds a string Field.
func String(key, value string) Field { return zap.String(key, value) }

// Int builds an int Field.
func Int(key string, value int) Field { return zap.Int(key, value) }

// Logger is the logging surface the quadtree package depends on.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// noop satisfies Logger without emitting anything. It is the default used
// when a caller does not attach a logger, so the hot path of Insert/Remove
// never pays for formatting a line nobody reads.
type noop struct{}

func (noop) Debug(string, ...Field) {}
func (noop) Info(string, ...Field)  {}
func (noop) Warn(string, ...Field)  {}
func (noop) Error(string, ...Field) {}

// NewNoop returns a Logger that discards everything.
func NewNoop() Logger { return noop{} }

// zapLogger adapts a *zap.Logger to Logger.
type zapLogger struct {
	inner *zap.Logger
}

// New builds a zap-backed Logger at the given level, writing JSON to stderr.
func New(level Level) (Logger, error) {
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(toZapLevel(level)),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	built, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &zapLogger{inner: built}, nil
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.inner.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.inner.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.inner.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.inner.Error(msg, fields...) }

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
