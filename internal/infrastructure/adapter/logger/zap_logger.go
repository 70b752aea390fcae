package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/amirhossein-jamali/pocket-ledger/internal/domain/port/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the zap logger
type Options struct {
	Production bool
	Level      core.LogLevel
	// File, when set, receives a copy of every entry and is rotated by size
	File       string
	MaxSizeMB  int
	MaxBackups int
	CallerInfo bool
}

// ZapLogger implements the Logger interface using Zap
type ZapLogger struct {
	logger *zap.Logger
	level  zap.AtomicLevel
	closer io.Closer
}

// NewZapLoggerWithOptions builds a logger writing to stderr and, optionally,
// to a rotating file
func NewZapLoggerWithOptions(opts Options) (*ZapLogger, error) {
	var encoderCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder

	if opts.Production {
		// In production, use a JSON encoder for structured logging
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		// In development, use a console encoder for easier reading
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"

	if opts.Production {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	level := zap.NewAtomicLevelAt(toZapLevel(opts.Level))
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}

	var closer io.Closer
	if opts.File != "" {
		writer, err := NewRotatingWriter(opts.File, opts.MaxSizeMB, opts.MaxBackups)
		if err != nil {
			return nil, err
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		fileCfg.TimeKey = "timestamp"
		fileCfg.MessageKey = "message"
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(writer), level))
		closer = writer
	}

	zapOpts := []zap.Option{}
	if opts.CallerInfo {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	return &ZapLogger{
		logger: zap.New(zapcore.NewTee(cores...), zapOpts...),
		level:  level,
		closer: closer,
	}, nil
}

// NewRotatingWriter returns a size-rotated log file writer
func NewRotatingWriter(file string, maxSizeMB, maxBackups int) (*lumberjack.Logger, error) {
	if file == "" {
		return nil, fmt.Errorf("rotation file path must not be empty")
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if maxBackups <= 0 {
		maxBackups = 5
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   false,
	}, nil
}

func toZapLevel(level core.LogLevel) zapcore.Level {
	switch level {
	case core.LogLevelDebug:
		return zap.DebugLevel
	case core.LogLevelWarn:
		return zap.WarnLevel
	case core.LogLevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// SetLevel sets the minimum log level
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	switch l.level.Level() {
	case zap.DebugLevel:
		return core.LogLevelDebug
	case zap.WarnLevel:
		return core.LogLevelWarn
	case zap.ErrorLevel:
		return core.LogLevelError
	default:
		return core.LogLevelInfo
	}
}

// mapToZapFields converts a map of fields to zap fields
func mapToZapFields(fields map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.logger.Debug(message, mapToZapFields(fields)...)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.logger.Info(message, mapToZapFields(fields)...)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.logger.Warn(message, mapToZapFields(fields)...)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.logger.Error(message, mapToZapFields(fields)...)
}

// Flush ensures all buffered logs are written and closes the log file
func (l *ZapLogger) Flush() error {
	// Sync on a terminal stderr fails with EINVAL on some platforms
	_ = l.logger.Sync()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
