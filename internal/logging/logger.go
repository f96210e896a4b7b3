// Package logging builds the zap logger used across medobs.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures the logger
type Options struct {
	// Level is a zap level name. Unknown names fall back to info.
	Level string
	// File receives log output. Empty disables logging entirely.
	File string
	// Encoding is "console" or "json". Defaults to console.
	Encoding string
}

// New builds a file-backed logger. The terminal belongs to the TUI, so
// output never goes to stdout or stderr.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" {
		return zap.NewNop(), nil
	}

	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(opts.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := strings.ToLower(opts.Encoding)
	if encoding == "" {
		encoding = "console"
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if encoding == "console" {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "msg"
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{opts.File},
		ErrorOutputPaths:  []string{opts.File},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("medobs"), nil
}
