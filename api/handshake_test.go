// File: api/handshake_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-dispatch/api"
)

func TestHandshakeAccessors(t *testing.T) {
	peer := &net.UDPAddr{IP: net.IPv4(10, 0, 0, 2), Port: 5353}
	local := &net.UDPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 13}

	hs := api.NewHandshake(peer, local, api.Datagram)
	require.Equal(t, peer, hs.PeerAddr())
	require.Equal(t, local, hs.LocalAddr())
	require.Equal(t, api.Datagram, hs.Transport())
}

func TestTransportKindString(t *testing.T) {
	require.Equal(t, "stream", api.Stream.String())
	require.Equal(t, "datagram", api.Datagram.String())
	require.Equal(t, "transport(7)", api.TransportKind(7).String())
}

func TestHandshakeString(t *testing.T) {
	peer := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 50000}
	local := &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 13}

	hs := api.NewHandshake(peer, local, api.Stream)
	require.Equal(t, "stream 127.0.0.1:50000->127.0.0.1:13", hs.String())
}
