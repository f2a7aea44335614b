// File: protocol/discard.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import "github.com/momentics/hioload-dispatch/api"

// NewDiscardFactory returns a Factory serving the discard protocol: the
// connection or datagram is accepted and dropped without reading or writing
// anything. Pass nil to keep the silent default logger.
func NewDiscardFactory(log api.SLogger) api.Factory {
	if log == nil {
		log = api.DefaultSLogger()
	}
	return api.FactoryFunc(func(api.Sender) api.Handler {
		return &discardHandler{log: log}
	})
}

type discardHandler struct {
	api.NopHandler
	log api.SLogger
}

// OnOpen implements api.Handler.
func (h *discardHandler) OnOpen(hs api.Handshake) {
	h.log.Info("discard", "peer", hs.PeerAddr(), "local", hs.LocalAddr(), "transport", hs.Transport())
}
