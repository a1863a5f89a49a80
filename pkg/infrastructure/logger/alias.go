package logger

import (
	"go.uber.org/zap"
)

const (
	LevelDebug = zap.DebugLevel
	LevelInfo  = zap.InfoLevel
	LevelWarn  = zap.WarnLevel
	LevelError = zap.ErrorLevel
)

var (
	String   = zap.String
	Int      = zap.Int
	Bool     = zap.Bool
	Duration = zap.Duration
	ErrorF   = zap.Error
	Any      = zap.Any
	Stringer = zap.Stringer
)

type (
	Field = zap.Field
)
