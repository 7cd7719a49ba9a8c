// Package transport names the contract a framed-channel collaborator (a
// WebSocket upgrader, a future HTTP/2 or HTTP/3 channel pipeline) plugs
// into. The core never frames or reads a byte off the wire itself; this
// package only fixes the seam and the handshake header names the core's
// HeaderMap is expected to carry across it.
package transport

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// HandshakeHeaderNames lists the request/response header names a
// WebSocket upgrade handshake reads or writes (RFC 6455 §4). Callers
// building a handshake on top of this module's HeaderMap use these
// constants instead of literal strings, so a rename here stays consistent
// with the rest of the core.
var HandshakeHeaderNames = []string{
	"Connection",
	"Upgrade",
	"Sec-WebSocket-Key",
	"Sec-WebSocket-Version",
	"Sec-WebSocket-Accept",
	"Sec-WebSocket-Protocol",
	"Sec-WebSocket-Extensions",
}

// ChannelUpgrader is the contract a framed-channel collaborator must
// satisfy to be handed an already-negotiated request. gorilla/websocket's
// *websocket.Upgrader satisfies it as-is; this package adds no method set
// of its own beyond naming the seam.
type ChannelUpgrader interface {
	Upgrade(w http.ResponseWriter, r *http.Request, responseHeader http.Header) (*websocket.Conn, error)
}

// NewUpgrader returns a ready-to-use ChannelUpgrader with the given read
// and write buffer sizes (0 selects gorilla/websocket's own default).
func NewUpgrader(readBufSize, writeBufSize int) ChannelUpgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  readBufSize,
		WriteBufferSize: writeBufSize,
		CheckOrigin:     func(*http.Request) bool { return true },
	}
}
