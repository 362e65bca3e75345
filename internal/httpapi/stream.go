package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const streamPollInterval = 500 * time.Millisecond

// SyslogStream :
// GET /syslogs/stream?key=... upgrades to a websocket and pushes every
// newly drained event as its own JSON frame, polling the same
// DrainSyslog path the plain /syslogs endpoint uses. A background
// reader detects the client going away (close frame, dropped
// connection) since gorilla's connection offers no other way to learn
// that without attempting a read.
func (h *Handlers) SyslogStream(w http.ResponseWriter, r *http.Request) {
	key, err := playerKeyFromRequest(r)
	if err != nil {
		writeResult(w, fail(err))
		return
	}

	conn, upErr := upgrader.Upgrade(w, r, nil)
	if upErr != nil {
		return
	}
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ticker.C:
			events, err := h.world.DrainSyslog(key)
			if err != nil {
				_ = conn.WriteJSON(map[string]interface{}{"error": err.Error()})
				return
			}
			for _, e := range events {
				if werr := conn.WriteJSON(e); werr != nil {
					return
				}
			}
		}
	}
}
