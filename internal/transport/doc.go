// File: internal/transport/doc.go
// Package transport
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Transport plumbing shared by the dispatch engines: Sender implementations
// for stream, datagram and raw-descriptor writes, handshake extraction, and
// the raw listener-descriptor helpers the reactor engine needs on Linux.
// Platform-specific code is strictly separated by build tags with stub
// fallbacks elsewhere.

package transport
