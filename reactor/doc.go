// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor implements the single-threaded readiness-multiplexed
// dispatch engine. All bound TCP listeners are registered non-blocking with
// an edge-triggered readable interest under stable integer tokens; one
// thread of control waits for readiness batches and, per notification,
// drains the listener's accept queue to exhaustion, serving each accepted
// connection synchronously through the api lifecycle contract.
//
// The drain-to-exhaustion discipline is a correctness requirement of
// edge-triggered notification, not a throughput tweak: a connection left
// pending after a notification would never generate another readiness event
// and would stall its listener permanently.
//
// Any error from the readiness wait or from accept (other than would-block)
// terminates Run immediately; there is no partial-continue.
//
// The epoll implementation is Linux-only; other platforms get a stub that
// fails engine construction with api.ErrNotSupported.
package reactor
