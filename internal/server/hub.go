package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	// Dev server: renderers are served from other local ports.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Message is one websocket push. Type is "scene" or "camera".
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// hub fans messages out to connected renderers. Writes to all connections
// happen under mu, so each connection has a single writer.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     *slog.Logger
}

func newHub(log *slog.Logger) *hub {
	return &hub{clients: make(map[*websocket.Conn]bool), log: log}
}

// serve upgrades the request, sends the snapshot messages and then reads
// until the client goes away. Incoming messages are passed to onMessage.
func (h *hub) serve(w http.ResponseWriter, r *http.Request, snapshot func() []Message, onMessage func([]byte)) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	for _, m := range snapshot() {
		if err := conn.WriteJSON(m); err != nil {
			h.mu.Unlock()
			h.log.Warn("websocket snapshot failed", "err", err)
			return
		}
	}
	h.clients[conn] = true
	n := len(h.clients)
	h.mu.Unlock()
	h.log.Info("renderer connected", "remote", r.RemoteAddr, "clients", n)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		onMessage(data)
	}

	h.mu.Lock()
	delete(h.clients, conn)
	n = len(h.clients)
	h.mu.Unlock()
	h.log.Info("renderer disconnected", "remote", r.RemoteAddr, "clients", n)
}

// broadcast sends m to every client, dropping clients whose write fails.
func (h *hub) broadcast(m Message) {
	data, err := json.Marshal(m)
	if err != nil {
		h.log.Error("encoding broadcast", "type", m.Type, "err", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("dropping renderer", "err", err)
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
