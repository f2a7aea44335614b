// File: api/sender.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Sender is the transport-bound write capability handed to a Factory for
// each accepted connection or datagram. For stream transports it writes to
// the accepted connection; for datagram transports it sends to the fixed
// origin address of the datagram being served.
//
// The capability is valid only for the duration of the current lifecycle
// (until OnClose returns); engines release the underlying handle afterwards.
type Sender interface {
	// Send writes p and returns the number of bytes written.
	Send(p []byte) (int, error)
}

// SendString writes msg through s.
func SendString(s Sender, msg string) (int, error) {
	return s.Send([]byte(msg))
}
