// File: reactor/poller.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral readiness-multiplexing interface.

package reactor

// Event correlates one readiness notification back to the token under which
// the originating listener was registered.
type Event struct {
	Token int
}

// Poller is the readiness-multiplexing facility behind the reactor engine.
// Implementations must deliver edge-triggered readable notifications: a
// notification signals the not-readable to readable transition, so consumers
// are required to drain all pending work before waiting again.
type Poller interface {
	// Register adds a non-blocking descriptor under a stable token with an
	// edge-triggered readable interest. Registrations are permanent; the
	// engine never removes them.
	Register(fd int, token int) error

	// Wait blocks with no timeout until readiness events are available and
	// writes them into events, returning how many were written.
	Wait(events []Event) (int, error)

	// Close releases the multiplexing facility.
	Close() error
}
