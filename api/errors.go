// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values used across the library.

package api

import "errors"

var (
	// ErrNotSupported is returned when a platform-specific facility (the
	// epoll-backed reactor engine) is requested on a platform that does not
	// provide it.
	ErrNotSupported = errors.New("operation not supported on this platform")

	// ErrNoListeners is returned when an engine is built without any bound
	// listener.
	ErrNoListeners = errors.New("no bound listeners")

	// ErrBuilderConsumed is returned when a Builder is bound to or built
	// again after its listeners were transferred into an engine.
	ErrBuilderConsumed = errors.New("builder already consumed by build")
)
