package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var ErrUnknownLevel = errors.New("log: unknown level")

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

type Field struct {
	Key   string
	Value any
}

func String(key, val string) Field          { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }
func Int(key string, val int) Field         { return Field{Key: key, Value: val} }
func Bool(key string, val bool) Field       { return Field{Key: key, Value: val} }
func Err(err error) Field                   { return Field{Key: "error", Value: err} }
func Any(key string, val any) Field         { return Field{Key: key, Value: val} }

type Logger struct {
	zapLogger *zap.Logger
	zapLevel  zapcore.Level
}

// New builds a console logger writing to w.
func New(level Level, w io.Writer) *Logger {
	zapLevel := toZapLevel(level)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.TimeKey = ""
	encoderConfig.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), zapLevel)
	return &Logger{zapLogger: zap.New(core), zapLevel: zapLevel}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), zapLevel: zapcore.FatalLevel}
}

func newWithCore(core zapcore.Core) *Logger {
	return &Logger{zapLogger: zap.New(core), zapLevel: zapcore.DebugLevel}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.zapLogger.Debug(msg, toZapFields(fields...)...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.zapLogger.Info(msg, toZapFields(fields...)...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.zapLogger.Warn(msg, toZapFields(fields...)...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.zapLogger.Error(msg, toZapFields(fields...)...)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{
		zapLogger: l.zapLogger.With(toZapFields(fields...)...),
		zapLevel:  l.zapLevel,
	}
}

func (l *Logger) Enabled(level Level) bool {
	return l.zapLevel.Enabled(toZapLevel(level))
}

// Sync flushes buffered entries. Errors from syncing a terminal are
// ignored.
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}

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

func toZapFields(fields ...Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			zapFields[i] = zap.String(f.Key, v)
		case float64:
			zapFields[i] = zap.Float64(f.Key, v)
		case int:
			zapFields[i] = zap.Int(f.Key, v)
		case bool:
			zapFields[i] = zap.Bool(f.Key, v)
		case error:
			zapFields[i] = zap.NamedError(f.Key, v)
		default:
			zapFields[i] = zap.Any(f.Key, v)
		}
	}
	return zapFields
}
