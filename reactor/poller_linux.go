//go:build linux

// File: reactor/poller_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7)-based poller with edge-triggered readable interest.

package reactor

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// epollPoller implements Poller on Linux epoll.
type epollPoller struct {
	epfd int
}

// NewPoller constructs the platform poller for Linux.
func NewPoller() (Poller, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("epoll create: %w", err)
	}
	return &epollPoller{epfd: epfd}, nil
}

// Register implements Poller. The kernel treats the event payload as opaque
// user data, so the token travels in the descriptor slot and comes back
// verbatim with each notification.
func (p *epollPoller) Register(fd int, token int) error {
	ev := unix.EpollEvent{
		Events: unix.EPOLLIN | unix.EPOLLET,
		Fd:     int32(token),
	}
	if err := unix.EpollCtl(p.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		return fmt.Errorf("epoll ctl add: %w", err)
	}
	return nil
}

// Wait implements Poller. Interruption by a signal is a normal wakeup and
// is retried; every other wait failure is surfaced to the caller.
func (p *epollPoller) Wait(events []Event) (int, error) {
	raw := make([]unix.EpollEvent, len(events))
	for {
		n, err := unix.EpollWait(p.epfd, raw, -1)
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return 0, fmt.Errorf("epoll wait: %w", err)
		}
		for i := 0; i < n; i++ {
			events[i] = Event{Token: int(raw[i].Fd)}
		}
		return n, nil
	}
}

// Close implements Poller.
func (p *epollPoller) Close() error {
	return unix.Close(p.epfd)
}
