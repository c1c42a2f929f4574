package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// Hub tracks connected live-reload clients and pushes reload messages to
// them. It doubles as the http.Handler for the WebSocket endpoint.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

// Register adds a client connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

// Unregister removes a client connection from the hub.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// ClientCount reports how many clients are currently connected.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// BroadcastReload tells every connected client to reload, naming the path
// that changed. Write failures are logged and the connection is left for
// its read loop to reap.
func (h *Hub) BroadcastReload(path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.conns) == 0 {
		return
	}

	data, err := json.Marshal(map[string]string{
		"action": "reload",
		"path":   path,
	})
	if err != nil {
		log.Printf("[reload] marshal failed: %v", err)
		return
	}

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[reload] send failed: %v", err)
		}
	}
}

// ServeHTTP upgrades the request to a WebSocket and parks the connection in
// the hub until the client goes away. Clients never send anything useful;
// the read loop exists to notice the close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[reload] upgrade failed: %v", err)
		return
	}

	h.Register(conn)
	defer func() {
		h.Unregister(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[reload] read failed: %v", err)
			}
			return
		}
	}
}
