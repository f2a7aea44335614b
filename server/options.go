// File: server/options.go
// Package server defines functional options for the thread engine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import "github.com/momentics/hioload-dispatch/api"

// defaultReadBufferSize bounds one received datagram.
const defaultReadBufferSize = 64 * 1024

// Option customizes engine initialization.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards all output.
func WithLogger(log api.SLogger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithReadBufferSize overrides the datagram receive buffer size.
func WithReadBufferSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.readBufferSize = size
		}
	}
}
