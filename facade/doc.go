// File: facade/doc.go
// Unified entry layer for hioload-dispatch.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package facade ties the pieces together: the Builder accumulates bound
// listeners eagerly and transfers their ownership, together with a Factory,
// into one of the two dispatch engines; Listen and ListenReactor are the
// one-call forms for the common single-address case.
package facade
