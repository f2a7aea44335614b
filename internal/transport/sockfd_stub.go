//go:build !linux

// File: internal/transport/sockfd_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub fallback for platforms without the epoll reactor path.

package transport

import (
	"net"

	"github.com/momentics/hioload-dispatch/api"
)

// ListenerFD is unavailable outside Linux.
func ListenerFD(*net.TCPListener) (int, error) {
	return -1, api.ErrNotSupported
}

// AcceptFD is unavailable outside Linux.
func AcceptFD(int) (int, *net.TCPAddr, error) {
	return -1, nil, api.ErrNotSupported
}

// IsWouldBlock never matches on the stub path.
func IsWouldBlock(error) bool { return false }

// CloseFD is unavailable outside Linux.
func CloseFD(int) error { return api.ErrNotSupported }

// NewFDSender is unavailable outside Linux.
func NewFDSender(int) api.Sender { return unsupportedSender{} }

type unsupportedSender struct{}

func (unsupportedSender) Send([]byte) (int, error) { return 0, api.ErrNotSupported }
