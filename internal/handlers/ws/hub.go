// Package ws pushes board-scoped post events to websocket subscribers.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/gfdmit/board-service/internal/logging"
	"github.com/gfdmit/board-service/internal/repository"
)

const (
	EventSubscribed  = "subscribed"
	EventPostCreated = "post_created"
	EventPostUpdated = "post_updated"
	EventPostDeleted = "post_deleted"
)

// Event is one notification delivered to the subscribers of a board. The
// subscribed ack carries no post.
type Event struct {
	Event string           `json:"event"`
	Post  *repository.Post `json:"post,omitempty"`
}

// Hub fans post events out to websocket connections keyed by board id. It
// never reads client payloads; the socket is a one-way notification stream.
type Hub struct {
	mu    sync.Mutex
	conns map[int64]map[*websocket.Conn]bool

	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[int64]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logging.New("ws"),
	}
}

// Subscribe upgrades the request and registers the connection under boardID.
// The subscriber receives an ack event once it is registered, then Subscribe
// blocks until the peer goes away, discarding anything the peer sends.
// The caller is expected to have validated the board.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, boardID int64) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return err
	}

	ack, err := json.Marshal(Event{Event: EventSubscribed})
	if err != nil {
		conn.Close()
		return err
	}

	// The ack is written under the lock so a concurrent Broadcast cannot
	// interleave with it on the same connection.
	h.mu.Lock()
	if h.conns[boardID] == nil {
		h.conns[boardID] = make(map[*websocket.Conn]bool)
	}
	h.conns[boardID][conn] = true
	err = conn.WriteMessage(websocket.TextMessage, ack)
	h.mu.Unlock()
	if err != nil {
		h.drop(boardID, conn)
		return nil
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.drop(boardID, conn)
			return nil
		}
	}
}

// Broadcast sends ev to every subscriber of boardID. A connection that fails
// the write is dropped.
func (h *Hub) Broadcast(boardID int64, ev Event) {
	message, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns[boardID] {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			h.logger.Warn().Err(err).Int64("board_id", boardID).Msg("dropping subscriber")
			delete(h.conns[boardID], conn)
			conn.Close()
		}
	}
}

func (h *Hub) drop(boardID int64, conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns[boardID], conn)
	h.mu.Unlock()
	conn.Close()
}
