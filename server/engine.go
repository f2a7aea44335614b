// File: server/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/google/uuid"

	"github.com/momentics/hioload-dispatch/api"
	"github.com/momentics/hioload-dispatch/internal/transport"
	"github.com/momentics/hioload-dispatch/pool"
)

// Engine serves every bound listener with one dedicated worker goroutine
// using blocking accept and receive calls. Construct it through
// facade.Builder or NewEngine; after construction the engine exclusively
// owns the bound listeners.
type Engine struct {
	tcp []*net.TCPListener
	udp []net.PacketConn

	factory *factoryGuard
	errs    *errQueue
	log     api.SLogger

	readBufferSize int
	bufs           *pool.BytePool
}

// NewEngine takes ownership of the bound listeners and the factory.
func NewEngine(tcp []*net.TCPListener, udp []net.PacketConn, factory api.Factory, opts ...Option) (*Engine, error) {
	if len(tcp)+len(udp) == 0 {
		return nil, api.ErrNoListeners
	}
	e := &Engine{
		tcp:            tcp,
		udp:            udp,
		factory:        &factoryGuard{factory: factory},
		errs:           newErrQueue(),
		log:            api.DefaultSLogger(),
		readBufferSize: defaultReadBufferSize,
	}
	for _, o := range opts {
		o(e)
	}
	e.bufs = pool.NewBytePool(e.readBufferSize)
	return e, nil
}

// TCPAddrs returns the bound stream listener addresses.
func (e *Engine) TCPAddrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(e.tcp))
	for _, ln := range e.tcp {
		addrs = append(addrs, ln.Addr())
	}
	return addrs
}

// UDPAddrs returns the bound datagram socket addresses.
func (e *Engine) UDPAddrs() []net.Addr {
	addrs := make([]net.Addr, 0, len(e.udp))
	for _, pc := range e.udp {
		addrs = append(addrs, pc.LocalAddr())
	}
	return addrs
}

// Run spawns one worker per bound listener and blocks the caller until the
// first fatal error posted by any worker, which it returns. If no worker
// ever fails, Run blocks forever.
//
// Run does not stop or join the workers: after the first error they keep
// serving detached until process exit. This is the engine's documented
// best-effort mode; there is no graceful shutdown.
func (e *Engine) Run() error {
	for _, ln := range e.tcp {
		e.log.Info("stream worker starting", "local", ln.Addr())
		go e.streamWorker(ln)
	}
	for _, pc := range e.udp {
		e.log.Info("datagram worker starting", "local", pc.LocalAddr())
		go e.datagramWorker(pc)
	}
	err := e.errs.Recv()
	e.log.Info("run aborting on first worker error", "err", err)
	return err
}

// streamWorker loops on blocking accept. A single connection's failure is
// posted to the mailbox and does not stop the worker from serving the next
// connection.
func (e *Engine) streamWorker(ln *net.TCPListener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			e.errs.Send(fmt.Errorf("accept on %v: %w", ln.Addr(), err))
			continue
		}
		if err := e.serveStream(conn); err != nil {
			e.errs.Send(err)
		}
	}
}

// serveStream runs the full lifecycle for one accepted connection and
// releases it afterwards.
func (e *Engine) serveStream(conn net.Conn) error {
	hs, err := transport.StreamHandshake(conn)
	if err != nil {
		conn.Close()
		return err
	}
	span := uuid.NewString()
	e.log.Info("open", "span", span, "peer", hs.PeerAddr(), "local", hs.LocalAddr())

	h := e.factory.connectionMade(transport.NewStreamSender(conn))
	h.OnOpen(hs)
	h.OnRequest()
	h.OnClose()

	e.log.Info("close", "span", span)
	if err := conn.Close(); err != nil {
		return fmt.Errorf("close %v: %w", hs.PeerAddr(), err)
	}
	return nil
}

// datagramWorker loops receiving one datagram at a time; every datagram is
// dispatched as its own full lifecycle with a reply-bound sender. The
// payload itself is discarded — the harness imposes no framing.
func (e *Engine) datagramWorker(pc net.PacketConn) {
	for {
		buf := e.bufs.GetBuffer()
		n, peer, err := pc.ReadFrom(buf)
		if err != nil {
			e.bufs.PutBuffer(buf)
			e.errs.Send(fmt.Errorf("recv on %v: %w", pc.LocalAddr(), err))
			continue
		}
		e.serveDatagram(pc, peer, n)
		e.bufs.PutBuffer(buf)
	}
}

// serveDatagram runs the full lifecycle for one received datagram. The
// shared socket is only lent out as a reply capability, never closed here.
func (e *Engine) serveDatagram(pc net.PacketConn, peer net.Addr, size int) {
	hs := transport.DatagramHandshake(peer, pc.LocalAddr())
	span := uuid.NewString()
	e.log.Debug("datagram", "span", span, "bytes", size, "peer", peer, "local", pc.LocalAddr())

	h := e.factory.connectionMade(transport.NewPacketSender(pc, peer))
	h.OnOpen(hs)
	h.OnRequest()
	h.OnClose()
}

// factoryGuard serializes ConnectionMade calls across workers. Only the
// construction call holds the lock; the rest of the lifecycle runs without
// it, so handler work stays concurrent across workers.
type factoryGuard struct {
	mu      sync.Mutex
	factory api.Factory
}

func (g *factoryGuard) connectionMade(s api.Sender) api.Handler {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.factory.ConnectionMade(s)
}
