// Package logging builds the logr.Logger used across antflow, backed by zap.
//
// Verbosity follows the logr convention: callers write
//
//	logger.V(logging.DEBUG).Info("ant stalled", "ant", id)
//
// and the configured level decides what reaches the sink.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels passed to logr.Logger.V.
const (
	DEFAULT = 0
	VERBOSE = 2
	DEBUG   = 4
	TRACE   = 5
)

// ParseLevel maps a level name to a verbosity.
// Accepted: "info"/"default", "verbose", "debug", "trace" (case-insensitive).
func ParseLevel(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info", "default":
		return DEFAULT, nil
	case "verbose":
		return VERBOSE, nil
	case "debug":
		return DEBUG, nil
	case "trace":
		return TRACE, nil
	default:
		return DEFAULT, fmt.Errorf("logging: unknown level %q", s)
	}
}

// NewLogger returns a zap-backed logr.Logger that emits records up to
// verbosity v. Development mode switches to the console encoder with
// caller information; otherwise JSON goes to stderr.
func NewLogger(v int, development bool) (logr.Logger, error) {
	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	// logr V(n) maps to zap level -n.
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-v))

	z, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("logging: build zap logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}

// NewLoggerTo returns a JSON logr.Logger writing to w at verbosity v.
func NewLoggerTo(w io.Writer, v int) logr.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(zapcore.Level(-v)))
	return zapr.NewLogger(zap.New(core))
}

// NewTestLogger creates a development logger that shows every level.
func NewTestLogger() logr.Logger {
	logger, err := NewLogger(TRACE, true)
	if err != nil {
		return logr.Discard()
	}
	return logger
}
