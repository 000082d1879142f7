// Package logging provides the zap-backed implementation of core.Logger
// used by the renderer and CLI.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dfrene/spectral-tracer/pkg/core"
)

// ZapLogger adapts a *zap.SugaredLogger to core.Logger.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New builds a production zap logger (JSON, info level) wrapped as a
// core.Logger.
func New() (*ZapLogger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// NewDevelopment builds a human-readable console logger, used by default
// from the CLI.
func NewDevelopment() (*ZapLogger, error) {
	base, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("building zap logger: %w", err)
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

func (l *ZapLogger) Printf(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Sync flushes any buffered log entries; call before process exit.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

var _ core.Logger = (*ZapLogger)(nil)
