// File: internal/transport/handshake.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"errors"
	"net"

	"github.com/momentics/hioload-dispatch/api"
)

// errConnReset covers the accept race where the peer resets before the
// addressing metadata can be read from the connection.
var errConnReset = errors.New("handshake: connection reset before address retrieval")

// StreamHandshake captures the addressing metadata of an accepted stream
// connection. It fails if the connection no longer carries usable addresses,
// e.g. when the peer already reset.
func StreamHandshake(conn net.Conn) (api.Handshake, error) {
	peer := conn.RemoteAddr()
	local := conn.LocalAddr()
	if peer == nil || local == nil {
		return api.Handshake{}, errConnReset
	}
	return api.NewHandshake(peer, local, api.Stream), nil
}

// DatagramHandshake derives a Handshake from the origin address of one
// received datagram and the bound socket address it arrived on.
func DatagramHandshake(peer, local net.Addr) api.Handshake {
	return api.NewHandshake(peer, local, api.Datagram)
}
