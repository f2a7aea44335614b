// File: server/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package server implements the blocking thread-per-listener dispatch
// engine. Every bound TCP listener and UDP socket gets one dedicated worker
// goroutine running a blocking accept/receive loop; each accepted connection
// or datagram is served synchronously through the api lifecycle contract.
//
// Failure policy is report-and-abandon: any worker failure is posted once to
// a shared error mailbox and the worker keeps serving; Run returns the first
// posted error without stopping or joining the workers. The engine runs in a
// deliberate best-effort mode with no graceful shutdown — workers are left
// running until process exit.
package server
