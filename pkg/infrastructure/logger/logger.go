// Package logger is a thin structured-logging facade over zap.
// The package-level logger is a no-op until Init is called.
package logger

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger carries a set of fields shared by every entry it writes
type Logger struct {
	z *zap.Logger
}

var global = &Logger{z: zap.NewNop()}

// Init replaces the package-level logger. Entries are written to w.
func Init(w io.Writer, level string, asJSON bool) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)
	global = &Logger{z: zap.New(core)}
	return nil
}

// SetNop silences the package-level logger
func SetNop() {
	global = &Logger{z: zap.NewNop()}
}

// Sync flushes buffered entries
func Sync() error {
	return global.z.Sync()
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// With returns a logger that adds fields to every entry
func With(fields ...Field) *Logger {
	return global.With(fields...)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *Logger) Info(_ context.Context, msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *Logger) Warn(_ context.Context, msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *Logger) Error(_ context.Context, msg string, fields ...Field) { l.z.Error(msg, fields...) }

func Debug(ctx context.Context, msg string, fields ...Field) { global.Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { global.Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { global.Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { global.Error(ctx, msg, fields...) }
