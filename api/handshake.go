// File: api/handshake.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import (
	"fmt"
	"net"
)

// TransportKind tells a Handler how the unit of work it is serving
// originated.
type TransportKind uint8

const (
	// Stream is a connection-oriented transport (TCP).
	Stream TransportKind = iota
	// Datagram is a connectionless transport (UDP); each received datagram
	// is dispatched as its own full lifecycle.
	Datagram
)

// String implements fmt.Stringer.
func (k TransportKind) String() string {
	switch k {
	case Stream:
		return "stream"
	case Datagram:
		return "datagram"
	default:
		return fmt.Sprintf("transport(%d)", uint8(k))
	}
}

// Handshake describes how a connection or datagram originated. It is built
// once, immediately after acceptance and before any Handler hook runs, and
// is never mutated afterwards.
type Handshake struct {
	peer  net.Addr
	local net.Addr
	kind  TransportKind
}

// NewHandshake builds a Handshake from the addresses observed at accept
// time. For datagram transports peer is the origin address of the received
// packet and local is the bound socket address.
func NewHandshake(peer, local net.Addr, kind TransportKind) Handshake {
	return Handshake{peer: peer, local: local, kind: kind}
}

// PeerAddr returns the remote address of the accepted connection or the
// origin address of the received datagram.
func (h Handshake) PeerAddr() net.Addr { return h.peer }

// LocalAddr returns the bound address the connection or datagram arrived on.
func (h Handshake) LocalAddr() net.Addr { return h.local }

// Transport returns the transport kind.
func (h Handshake) Transport() TransportKind { return h.kind }

// String implements fmt.Stringer.
func (h Handshake) String() string {
	return fmt.Sprintf("%s %v->%v", h.kind, h.peer, h.local)
}
