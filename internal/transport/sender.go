// File: internal/transport/sender.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package transport

import (
	"fmt"
	"net"

	"github.com/momentics/hioload-dispatch/api"
)

// streamSender writes to an exclusively owned accepted connection.
type streamSender struct {
	conn net.Conn
}

// NewStreamSender wraps an accepted stream connection as an api.Sender.
// The sender shares the connection with the owning engine; the engine closes
// the connection after the lifecycle completes.
func NewStreamSender(conn net.Conn) api.Sender {
	return &streamSender{conn: conn}
}

// Send implements api.Sender.
func (s *streamSender) Send(p []byte) (int, error) {
	n, err := s.conn.Write(p)
	if err != nil {
		return n, fmt.Errorf("stream send: %w", err)
	}
	return n, nil
}

// packetSender replies through the shared bound socket to the fixed origin
// address of the datagram being served.
type packetSender struct {
	pc   net.PacketConn
	dest net.Addr
}

// NewPacketSender wraps a bound packet socket plus reply destination as an
// api.Sender. The socket stays owned by the engine worker; only the reply
// capability is handed out.
func NewPacketSender(pc net.PacketConn, dest net.Addr) api.Sender {
	return &packetSender{pc: pc, dest: dest}
}

// Send implements api.Sender.
func (s *packetSender) Send(p []byte) (int, error) {
	n, err := s.pc.WriteTo(p, s.dest)
	if err != nil {
		return n, fmt.Errorf("datagram send to %v: %w", s.dest, err)
	}
	return n, nil
}
