// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the connection-lifecycle contract shared by every
// dispatch engine in hioload-dispatch: the Handshake value captured at accept
// time, the Sender write capability, the Handler lifecycle hooks, and the
// Factory that produces one Handler per accepted connection or datagram.
//
// Engines guarantee that for every accepted unit of work OnOpen runs exactly
// once, OnRequest runs zero or more times, and OnClose runs exactly once,
// strictly in that order, and that the underlying transport handle is
// released only after OnClose returns.
package api
