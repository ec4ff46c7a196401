package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Init builds the package logger. Output defaults to stderr at info level.
func Init(opts ...OptionFunc) {
	opt := Option{
		MultiWriter: []io.Writer{os.Stderr},
		Level:       zapcore.InfoLevel,
	}
	for _, o := range opts {
		o(&opt)
	}

	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		EncodeLevel: zapcore.CapitalLevelEncoder,
		TimeKey:     "time",
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})

	var cores []zapcore.Core
	for _, w := range opt.MultiWriter {
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), opt.Level))
	}

	logger = zap.New(zapcore.NewTee(cores...)).Sugar()
}

// ParseLevel maps a config level name to a zap level, falling back to info
func ParseLevel(name string) zapcore.Level {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes buffered entries
func Sync() {
	_ = logger.Sync()
}

// Debugw logs a debug message with key/value pairs
func Debugw(msg string, kv ...interface{}) {
	logger.Debugw(msg, kv...)
}

// Infow logs an info message with key/value pairs
func Infow(msg string, kv ...interface{}) {
	logger.Infow(msg, kv...)
}

// Warnw logs a warning with key/value pairs
func Warnw(msg string, kv ...interface{}) {
	logger.Warnw(msg, kv...)
}

// Errorw logs an error with key/value pairs
func Errorw(msg string, kv ...interface{}) {
	logger.Errorw(msg, kv...)
}
