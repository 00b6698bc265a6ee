package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type FeedClient struct {
	UserID uint
	Conn   *websocket.Conn
}

// RealtimeHub tracks the open feed sockets per user so notification events can
// be pushed without polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*FeedClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*FeedClient]struct{})}
}

func (h *RealtimeHub) Register(c *FeedClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*FeedClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
}

func (h *RealtimeHub) Unregister(c *FeedClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Broadcast sends payload to every open socket belonging to userID.
func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, _ := json.Marshal(payload)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
