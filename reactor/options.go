// File: reactor/options.go
// Package reactor defines functional options for the reactor engine.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import "github.com/momentics/hioload-dispatch/api"

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
