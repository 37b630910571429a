// Package logger provides structured diagnostic logging for citypop.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines the interface for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a new logger with the given fields attached
	With(fields ...Field) Logger
	// Sync flushes any buffered log entries
	Sync() error
}

// Field is a key-value pair attached to a log entry
type Field = zap.Field

// Config represents the logger configuration
type Config struct {
	Level       string   // debug, info, warn, error
	Format      string   // console or json
	OutputPaths []string // defaults to stderr
}

type zapLogger struct {
	logger *zap.Logger
}

// New creates a Logger from the given configuration
func New(cfg Config) (Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	zapCfg.Sampling = nil

	if strings.ToLower(cfg.Format) != "json" {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	if len(cfg.OutputPaths) > 0 {
		zapCfg.OutputPaths = cfg.OutputPaths
	}

	z, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	return &zapLogger{logger: z}, nil
}

// NewNop returns a logger that discards everything
func NewNop() Logger {
	return &zapLogger{logger: zap.NewNop()}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.logger.Error(msg, fields...) }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{logger: l.logger.With(fields...)}
}

func (l *zapLogger) Sync() error {
	return l.logger.Sync()
}

// String creates a string field
func String(key, val string) Field { return zap.String(key, val) }

// Int creates an int field
func Int(key string, val int) Field { return zap.Int(key, val) }

// Int64 creates an int64 field
func Int64(key string, val int64) Field { return zap.Int64(key, val) }

// Bool creates a bool field
func Bool(key string, val bool) Field { return zap.Bool(key, val) }

// Strings creates a string slice field
func Strings(key string, val []string) Field { return zap.Strings(key, val) }

// Error creates an error field with the key "error"
func Error(err error) Field { return zap.Error(err) }
