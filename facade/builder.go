// File: facade/builder.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package facade

import (
	"fmt"
	"net"

	"github.com/momentics/hioload-dispatch/api"
	"github.com/momentics/hioload-dispatch/reactor"
	"github.com/momentics/hioload-dispatch/server"
)

// Builder accumulates bound listeners. Binding happens eagerly at
// registration time: a failed bind leaves no entry behind, and the listeners
// already held stay usable for a later build. Build transfers ownership of
// every accumulated listener plus the factory into an engine; afterwards the
// builder is consumed and refuses further binds and builds.
//
// Bind addresses take the usual host:port form. Resolution and binding go
// through the net package, which binds the first usable candidate address
// and fails otherwise; later candidates are not retried.
type Builder struct {
	tcp      []*net.TCPListener
	udp      []net.PacketConn
	consumed bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BindTCP eagerly binds a stream listener on addr. The builder is returned
// for chaining.
func (b *Builder) BindTCP(addr string) (*Builder, error) {
	if b.consumed {
		return b, api.ErrBuilderConsumed
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return b, fmt.Errorf("bind tcp %s: %w", addr, err)
	}
	b.tcp = append(b.tcp, ln.(*net.TCPListener))
	return b, nil
}

// BindUDP eagerly binds a datagram socket on addr. The builder is returned
// for chaining.
func (b *Builder) BindUDP(addr string) (*Builder, error) {
	if b.consumed {
		return b, api.ErrBuilderConsumed
	}
	pc, err := net.ListenPacket("udp", addr)
	if err != nil {
		return b, fmt.Errorf("bind udp %s: %w", addr, err)
	}
	b.udp = append(b.udp, pc)
	return b, nil
}

// TCPAddrs returns the addresses of the stream listeners bound so far.
func (b *Builder) TCPAddrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(b.tcp))
	for _, ln := range b.tcp {
		addrs = append(addrs, ln.Addr())
	}
	return addrs
}

// UDPAddrs returns the addresses of the datagram sockets bound so far.
func (b *Builder) UDPAddrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(b.udp))
	for _, pc := range b.udp {
		addrs = append(addrs, pc.LocalAddr())
	}
	return addrs
}

// Build transfers the accumulated listeners and the factory into a
// thread-per-listener engine and consumes the builder.
func (b *Builder) Build(factory api.Factory, opts ...server.Option) (*server.Engine, error) {
	if b.consumed {
		return nil, api.ErrBuilderConsumed
	}
	b.consumed = true
	tcp, udp := b.tcp, b.udp
	b.tcp, b.udp = nil, nil
	return server.NewEngine(tcp, udp, factory, opts...)
}

// BuildReactor transfers the accumulated stream listeners and the factory
// into the single-threaded reactor engine and consumes the builder. The
// reactor engine serves stream transport only; a builder holding datagram
// sockets cannot be built into it.
func (b *Builder) BuildReactor(factory api.Factory, opts ...reactor.Option) (*reactor.Engine, error) {
	if b.consumed {
		return nil, api.ErrBuilderConsumed
	}
	if len(b.udp) > 0 {
		return nil, fmt.Errorf("reactor engine with datagram listeners: %w", api.ErrNotSupported)
	}
	b.consumed = true
	tcp := b.tcp
	b.tcp = nil
	return reactor.NewEngine(tcp, factory, opts...)
}
