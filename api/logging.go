// File: api/logging.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// SLogger abstracts the subset of *log/slog.Logger behavior the engines
// use, so embedders can plug in their own logger or keep the silent default.
//
// Engines log at two levels:
//   - Info for lifecycle events (bind, open, close, fatal error)
//   - Debug for per-I/O detail (accept drain, datagram receive)
//
// A *slog.Logger satisfies this interface.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// DefaultSLogger returns the default SLogger: a no-op logger that discards
// all output. The library never writes to stdout or stderr unless a logger
// is explicitly configured.
func DefaultSLogger() SLogger {
	return discardSLogger{}
}

type discardSLogger struct{}

var _ SLogger = discardSLogger{}

// Debug implements SLogger.
func (discardSLogger) Debug(msg string, args ...any) {}

// Info implements SLogger.
func (discardSLogger) Info(msg string, args ...any) {}
