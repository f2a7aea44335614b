// File: reactor/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package reactor

import (
	"fmt"
	"net"

	"github.com/google/uuid"

	"github.com/momentics/hioload-dispatch/api"
	"github.com/momentics/hioload-dispatch/internal/transport"
)

// maxEvents bounds one readiness batch.
const maxEvents = 128

// endpoint is one registered listener resolved from a readiness token.
type endpoint struct {
	ln    *net.TCPListener
	fd    int
	local net.Addr
}

// Engine serves all bound TCP listeners on a single thread of control.
// Construct it through facade.Builder or NewEngine; after construction the
// engine exclusively owns the bound listeners.
type Engine struct {
	poller   Poller
	registry map[int]*endpoint
	factory  api.Factory
	log      api.SLogger
}

// NewEngine takes ownership of the bound listeners and the factory. Each
// listener is switched to non-blocking mode and registered with the platform
// poller under its registry token.
func NewEngine(lns []*net.TCPListener, factory api.Factory, opts ...Option) (*Engine, error) {
	p, err := NewPoller()
	if err != nil {
		return nil, err
	}
	e, err := newEngine(p, lns, factory, opts...)
	if err != nil {
		p.Close()
		return nil, err
	}
	return e, nil
}

// newEngine wires an explicit poller; tests inject scripted pollers here.
func newEngine(p Poller, lns []*net.TCPListener, factory api.Factory, opts ...Option) (*Engine, error) {
	if len(lns) == 0 {
		return nil, api.ErrNoListeners
	}
	e := &Engine{
		poller:   p,
		registry: make(map[int]*endpoint, len(lns)),
		factory:  factory,
		log:      api.DefaultSLogger(),
	}
	for _, o := range opts {
		o(e)
	}
	for token, ln := range lns {
		fd, err := transport.ListenerFD(ln)
		if err != nil {
			return nil, err
		}
		if err := p.Register(fd, token); err != nil {
			return nil, err
		}
		e.registry[token] = &endpoint{ln: ln, fd: fd, local: ln.Addr()}
	}
	return e, nil
}

// Addrs returns the bound listener addresses in registration order.
func (e *Engine) Addrs() []net.Addr {
	addrs := make([]net.Addr, len(e.registry))
	for token, ep := range e.registry {
		addrs[token] = ep.local
	}
	return addrs
}

// Run blocks the calling goroutine in the readiness loop. It returns only
// on a fatal error — from the wait call or from a non-would-block accept
// failure — and the whole engine stops with it; healthy listeners are not
// serviced past the first fatal error.
func (e *Engine) Run() error {
	e.log.Info("reactor running", "listeners", len(e.registry))
	events := make([]Event, maxEvents)
	for {
		n, err := e.poller.Wait(events)
		if err != nil {
			return fmt.Errorf("readiness wait: %w", err)
		}
		for _, ev := range events[:n] {
			ep, ok := e.registry[ev.Token]
			if !ok {
				// A token can outlive its resource in designs that
				// deregister; nothing deregisters here, but tolerate it.
				e.log.Debug("ignoring event for unknown token", "token", ev.Token)
				continue
			}
			if err := e.drain(ep); err != nil {
				return err
			}
		}
	}
}

// drain accepts on the listener until would-block. One edge-triggered
// notification may stand for any number of pending connections, so stopping
// early would strand the remainder with no further wakeup. Each accepted
// connection is served synchronously before the next accept.
func (e *Engine) drain(ep *endpoint) error {
	for {
		fd, peer, err := transport.AcceptFD(ep.fd)
		if err != nil {
			if transport.IsWouldBlock(err) {
				return nil
			}
			return fmt.Errorf("accept on %v: %w", ep.local, err)
		}
		if err := e.serve(fd, peer, ep.local); err != nil {
			return err
		}
	}
}

// serve runs the full lifecycle for one accepted connection and releases
// its descriptor afterwards.
func (e *Engine) serve(fd int, peer net.Addr, local net.Addr) error {
	hs := api.NewHandshake(peer, local, api.Stream)
	span := uuid.NewString()
	e.log.Info("open", "span", span, "peer", peer, "local", local)

	h := e.factory.ConnectionMade(transport.NewFDSender(fd))
	h.OnOpen(hs)
	h.OnRequest()
	h.OnClose()

	e.log.Info("close", "span", span)
	return transport.CloseFD(fd)
}
