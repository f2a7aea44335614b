// File: protocol/daytime.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package protocol

import (
	"github.com/benbjohnson/clock"

	"github.com/momentics/hioload-dispatch/api"
)

// TimeFormat is the layout of the daytime reply. The protocol mandates no
// particular format, only a human-readable line.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 -0700"

// NewDaytimeFactory returns a Factory serving the daytime protocol: one
// textual timestamp is written per lifecycle, then the engine releases the
// connection. Pass a nil clock for wall time and a nil logger for the silent
// default.
func NewDaytimeFactory(clk clock.Clock, log api.SLogger) api.Factory {
	if clk == nil {
		clk = clock.New()
	}
	if log == nil {
		log = api.DefaultSLogger()
	}
	return api.FactoryFunc(func(s api.Sender) api.Handler {
		return &daytimeHandler{sender: s, clk: clk, log: log}
	})
}

type daytimeHandler struct {
	api.NopHandler
	sender api.Sender
	clk    clock.Clock
	log    api.SLogger
}

// OnRequest implements api.Handler.
func (h *daytimeHandler) OnRequest() {
	stamp := h.clk.Now().Format(TimeFormat)
	if _, err := api.SendString(h.sender, stamp+"\r\n"); err != nil {
		// A failed reply is this connection's problem only; the engine
		// decides nothing based on it.
		h.log.Info("daytime send failed", "err", err)
	}
}
