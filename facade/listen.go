// File: facade/listen.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"github.com/momentics/hioload-dispatch/api"
	"github.com/momentics/hioload-dispatch/reactor"
	"github.com/momentics/hioload-dispatch/server"
)

// Listen binds addr for both stream and datagram transport and serves it
// with the thread-per-listener engine. It blocks like Engine.Run: until the
// first fatal worker error, or forever.
func Listen(addr string, factory api.Factory, opts ...server.Option) error {
	b, err := NewBuilder().BindTCP(addr)
	if err != nil {
		return err
	}
	if _, err := b.BindUDP(addr); err != nil {
		return err
	}
	e, err := b.Build(factory, opts...)
	if err != nil {
		return err
	}
	return e.Run()
}

// ListenReactor binds addr for stream transport and serves it with the
// single-threaded reactor engine. It blocks until the engine's first fatal
// error.
func ListenReactor(addr string, factory api.Factory, opts ...reactor.Option) error {
	b, err := NewBuilder().BindTCP(addr)
	if err != nil {
		return err
	}
	e, err := b.BuildReactor(factory, opts...)
	if err != nil {
		return err
	}
	return e.Run()
}
