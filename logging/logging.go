// Package logging owns the process-wide zap logger used by scenes, the
// network client and the server.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global SugaredLogger. It discards everything until Init is
// called so packages can log from tests without setup.
var Log = zap.NewNop().Sugar()

var base = zap.NewNop()

// Init sends logs to a rotating file at path and to stderr. An empty path
// logs to stderr only.
func Init(path string, level zapcore.Level) {
	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level),
	}
	if path != "" {
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lj), level))
	}

	Set(zap.New(zapcore.NewTee(cores...), zap.AddCaller()))
}

// Set replaces the global logger, e.g. with an observer in tests.
func Set(logger *zap.Logger) {
	base = logger
	Log = logger.Sugar()
}

// Named returns a child of the global logger for components that take a
// *zap.Logger.
func Named(name string) *zap.Logger {
	return base.Named(name)
}

// Sync flushes buffered entries.
func Sync() {
	_ = base.Sync()
}
