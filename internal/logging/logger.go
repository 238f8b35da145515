// Package logging writes client diagnostics to a file under the state
// directory. The TUI owns the terminal, so nothing is ever logged to
// stdout or stderr; silent failures here degrade to a no-op logger.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "lls.log"

// New builds a file-backed logger rooted at the given state directory.
// When verbose is set the level drops to debug.
func New(stateDir string, verbose bool) (*zap.Logger, error) {
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, err
	}

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{filepath.Join(stateDir, logFileName)}
	cfg.ErrorOutputPaths = cfg.OutputPaths
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Discard returns a logger that drops everything. Used as the default so
// callers never need a nil check.
func Discard() *zap.Logger {
	return zap.NewNop()
}
