// Package logging builds the zap logger used by the shells.
//
// The console belongs to the interactive UI, so logs only go to a file and
// only when one is configured.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/reminders/internal/config"
)

// New returns a logger writing JSON lines to cfg.File, appending if the file
// exists. debug forces the debug level regardless of cfg.Level. With no
// file configured it returns a no-op logger.
func New(cfg config.LogConfig, debug bool) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level.SetLevel(l)
	}
	if debug {
		level.SetLevel(zap.DebugLevel)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	conf := zap.NewProductionConfig()
	conf.Level = level
	conf.Development = debug
	conf.Sampling = nil
	conf.OutputPaths = []string{cfg.File}
	conf.ErrorOutputPaths = []string{cfg.File}

	logger, err := conf.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
