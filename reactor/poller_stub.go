//go:build !linux

// File: reactor/poller_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub fallback: the epoll-backed reactor engine is Linux-only.

package reactor

import "github.com/momentics/hioload-dispatch/api"

// NewPoller fails on platforms without an edge-triggered readiness facility
// wired into this library.
func NewPoller() (Poller, error) {
	return nil, api.ErrNotSupported
}
