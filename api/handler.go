// File: api/handler.go
// Package api defines the Handler and Factory lifecycle interfaces.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Handler receives the lifecycle hooks for one accepted connection or
// datagram. A Handler instance is never shared across connections; it is
// created by a Factory and discarded after OnClose returns.
//
// Implementations that only need a subset of the hooks should embed
// NopHandler or use one of the adapter types below.
type Handler interface {
	// OnOpen runs exactly once, before any other hook, with the addressing
	// metadata captured at accept time.
	OnOpen(hs Handshake)

	// OnRequest runs zero or more times between OnOpen and OnClose. Side
	// effects are entirely caller-defined, typically writing through the
	// Sender retained at construction.
	OnRequest()

	// OnClose runs exactly once, after OnOpen and every OnRequest. The
	// transport handle is released only after OnClose returns.
	OnClose()
}

// Factory produces one Handler per accepted unit of work. ConnectionMade
// must be callable repeatedly and should return near-instantly: it exists to
// let caller logic retain the Sender before the rest of the lifecycle runs.
//
// A Factory must be safe for the concurrency regime of the engine that owns
// it: the thread engine serializes ConnectionMade calls behind a mutex, the
// reactor engine calls it from its single thread of control.
type Factory interface {
	ConnectionMade(s Sender) Handler
}

// FactoryFunc adapts a plain function to the Factory interface.
type FactoryFunc func(s Sender) Handler

// ConnectionMade implements Factory.
func (f FactoryFunc) ConnectionMade(s Sender) Handler { return f(s) }

// NopHandler implements Handler with no-op hooks. Embed it to implement
// only the hooks you need.
type NopHandler struct{}

// OnOpen implements Handler.
func (NopHandler) OnOpen(Handshake) {}

// OnRequest implements Handler.
func (NopHandler) OnRequest() {}

// OnClose implements Handler.
func (NopHandler) OnClose() {}

// RequestFunc adapts a single callable to a Handler whose only non-trivial
// hook is OnRequest.
type RequestFunc func()

// OnOpen implements Handler.
func (RequestFunc) OnOpen(Handshake) {}

// OnRequest implements Handler.
func (f RequestFunc) OnRequest() { f() }

// OnClose implements Handler.
func (RequestFunc) OnClose() {}

// OpenFunc adapts a single callable to a Handler whose only non-trivial
// hook is OnOpen.
type OpenFunc func(hs Handshake)

// OnOpen implements Handler.
func (f OpenFunc) OnOpen(hs Handshake) { f(hs) }

// OnRequest implements Handler.
func (OpenFunc) OnRequest() {}

// OnClose implements Handler.
func (OpenFunc) OnClose() {}

// HandlerFuncs adapts any subset of callables to the full Handler shape.
// Nil fields are no-ops.
type HandlerFuncs struct {
	Open    func(hs Handshake)
	Request func()
	Close   func()
}

// OnOpen implements Handler.
func (h HandlerFuncs) OnOpen(hs Handshake) {
	if h.Open != nil {
		h.Open(hs)
	}
}

// OnRequest implements Handler.
func (h HandlerFuncs) OnRequest() {
	if h.Request != nil {
		h.Request()
	}
}

// OnClose implements Handler.
func (h HandlerFuncs) OnClose() {
	if h.Close != nil {
		h.Close()
	}
}
