// Package logger builds the structured zap logger used across the app.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nikolayk812/airport-services/internal/config"
)

// TUIFallbackFile is where the TUI writes logs when no file is configured,
// since stderr shares the terminal with the interface.
func TUIFallbackFile() string {
	return filepath.Join(os.TempDir(), "airport-services.log")
}

// New returns a production JSON logger for cfg. verbose forces debug level.
func New(cfg config.Log, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("zapcore.ParseLevel: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	output := "stderr"
	if cfg.File != "" {
		output = cfg.File
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{output}
	zcfg.ErrorOutputPaths = []string{output}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("zcfg.Build: %w", err)
	}

	return logger, nil
}
