//go:build linux

// File: internal/transport/sockfd_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Raw-descriptor helpers for the Linux epoll reactor path: listener
// descriptor extraction, non-blocking accept, and descriptor-level writes.

package transport

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-dispatch/api"
)

// ListenerFD extracts the raw descriptor of a bound TCP listener and
// switches it to non-blocking mode so accept never parks the reactor thread.
// The listener must stay alive as long as the descriptor is in use.
func ListenerFD(ln *net.TCPListener) (int, error) {
	raw, err := ln.SyscallConn()
	if err != nil {
		return -1, fmt.Errorf("listener fd: %w", err)
	}
	fd := -1
	var ctlErr error
	if err := raw.Control(func(f uintptr) {
		fd = int(f)
		ctlErr = unix.SetNonblock(fd, true)
	}); err != nil {
		return -1, fmt.Errorf("listener fd: %w", err)
	}
	if ctlErr != nil {
		return -1, fmt.Errorf("listener nonblock: %w", ctlErr)
	}
	return fd, nil
}

// AcceptFD accepts one pending connection on a non-blocking listener
// descriptor. A would-block condition is returned verbatim; callers detect
// it with IsWouldBlock and treat it as drain-loop termination, not failure.
func AcceptFD(fd int) (int, *net.TCPAddr, error) {
	for {
		nfd, sa, err := unix.Accept4(fd, unix.SOCK_CLOEXEC)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return -1, nil, err
		}
		return nfd, sockaddrTCPAddr(sa), nil
	}
}

// IsWouldBlock reports whether err is the non-error readiness signal that
// terminates an accept-drain loop.
func IsWouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// CloseFD releases an accepted connection descriptor.
func CloseFD(fd int) error {
	if err := unix.Close(fd); err != nil {
		return fmt.Errorf("close fd %d: %w", fd, err)
	}
	return nil
}

// fdSender writes directly to an accepted connection descriptor.
type fdSender struct {
	fd int
}

// NewFDSender wraps an accepted connection descriptor as an api.Sender.
func NewFDSender(fd int) api.Sender {
	return fdSender{fd: fd}
}

// Send implements api.Sender. Short writes are continued until the whole
// payload is on the wire.
func (s fdSender) Send(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := unix.Write(s.fd, p[total:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return total, fmt.Errorf("fd send: %w", err)
		}
		total += n
	}
	return total, nil
}

// sockaddrTCPAddr converts the accept-time sockaddr into a *net.TCPAddr.
func sockaddrTCPAddr(sa unix.Sockaddr) *net.TCPAddr {
	switch sa := sa.(type) {
	case *unix.SockaddrInet4:
		ip := make(net.IP, net.IPv4len)
		copy(ip, sa.Addr[:])
		return &net.TCPAddr{IP: ip, Port: sa.Port}
	case *unix.SockaddrInet6:
		ip := make(net.IP, net.IPv6len)
		copy(ip, sa.Addr[:])
		return &net.TCPAddr{IP: ip, Port: sa.Port, Zone: zoneName(sa.ZoneId)}
	default:
		return nil
	}
}

// zoneName resolves a scope id to an interface name, falling back to the
// numeric form when the interface cannot be resolved.
func zoneName(zone uint32) string {
	if zone == 0 {
		return ""
	}
	if ifi, err := net.InterfaceByIndex(int(zone)); err == nil {
		return ifi.Name
	}
	return strconv.FormatUint(uint64(zone), 10)
}
