package handlers

import (
	"log"
	"net/http"
	"time"

	services "weather-lookup/service"

	"github.com/gorilla/websocket"
)

const (
	streamWriteWait    = 5 * time.Second
	streamPongWait     = 60 * time.Second
	streamPingInterval = 25 * time.Second
	streamReadLimit    = 1024
)

// StreamHandler pushes a Snapshot to the client on connect and after every
// state change. Bursts of changes collapse into a single push.
type StreamHandler struct {
	session  *services.LookupSession
	feed     *services.ChangeFeed
	upgrader websocket.Upgrader
}

func NewStreamHandler(session *services.LookupSession, feed *services.ChangeFeed) *StreamHandler {
	return &StreamHandler{
		session: session,
		feed:    feed,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The bridge listens for one local user.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles GET /v1/stream
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[StreamHandler] Upgrade failed:", err)
		return
	}
	defer conn.Close()

	signals, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	gone := make(chan struct{})
	go readPump(conn, gone)

	ticker := time.NewTicker(streamPingInterval)
	defer ticker.Stop()

	if err := h.push(conn); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(streamWriteWait))
			return
		case <-gone:
			return
		case _, ok := <-signals:
			if !ok {
				return
			}
			if err := h.push(conn); err != nil {
				log.Println("[StreamHandler] Write failed:", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *StreamHandler) push(conn *websocket.Conn) error {
	_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	return conn.WriteJSON(h.session.Snapshot())
}

// readPump drains client frames so control messages are processed, and
// closes gone once the client disconnects.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)
	conn.SetReadLimit(streamReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(streamPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(streamPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
