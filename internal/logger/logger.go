// Package logger builds the zap logger. Output goes to a file so it never
// draws over the dashboard.
package logger

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared logger appending to path. Debug enables debug level,
// otherwise only warnings and errors are written. The returned func flushes
// buffered entries and should be deferred by the caller.
func New(path string, debug bool) (*zap.SugaredLogger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log directory for %s", path)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, nil, errors.Wrap(err, "build logger")
	}

	sugar := zapLogger.Sugar()
	return sugar, func() { _ = sugar.Sync() }, nil
}

// Nop discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
