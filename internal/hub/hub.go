// Package hub tracks live websocket connections per user and fans out change
// events to them. Delivery is fire-and-forget: no acks, no retries, no queue
// for offline users.
package hub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/saieswarnookala/project-X/internal/config"
)

// Event is the JSON frame pushed to clients. Every event carries a "type" key
// naming one of the Event* constants.
type Event map[string]any

// Event types emitted by the API handlers.
const (
	EventTransactionCreated = "transaction_created"
	EventTransactionUpdated = "transaction_updated"
	EventTaskCreated        = "task_created"
	EventTaskUpdated        = "task_updated"
	EventDocumentCreated    = "document_created"
	EventDocumentUpdated    = "document_updated"
	EventMessageCreated     = "message_created"
	EventMessageRead        = "message_read"
)

// authMessage is the only inbound frame the server understands. A connection
// that never sends one stays open but unregistered and receives nothing.
type authMessage struct {
	Type   string `json:"type"`
	UserID int    `json:"userId"`
}

// Hub is the connection registry. At most one connection is tracked per user
// id; re-authenticating replaces the previous entry.
type Hub struct {
	log          zerolog.Logger
	upgrader     websocket.Upgrader
	sendBuffer   int
	readLimit    int64
	writeTimeout time.Duration

	mu      sync.RWMutex
	clients map[int]*client
}

// New creates a Hub. The upgrader accepts any origin when cfg.AllowedOrigin
// is "*", otherwise it requires an exact Origin header match.
func New(cfg *config.Config, log zerolog.Logger) *Hub {
	h := &Hub{
		log:          log.With().Str("component", "hub").Logger(),
		sendBuffer:   cfg.WsSendBuffer,
		readLimit:    cfg.WsReadLimit,
		writeTimeout: cfg.WsWriteTimeout,
		clients:      make(map[int]*client),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if cfg.AllowedOrigin == "*" {
				return true
			}
			return r.Header.Get("Origin") == cfg.AllowedOrigin
		},
	}
	return h
}

// HandleWS upgrades the request and serves the connection until it closes.
// The read loop only understands auth frames; anything else is logged and
// dropped.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	cl := newClient(conn, h.sendBuffer)
	h.log.Debug().Str("conn", cl.id.String()).Msg("client connected")
	go cl.writePump(h.writeTimeout)

	conn.SetReadLimit(h.readLimit)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var msg authMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.log.Warn().Err(err).Str("conn", cl.id.String()).Msg("dropping malformed websocket message")
			continue
		}
		if msg.Type == "auth" && msg.UserID > 0 {
			h.register(msg.UserID, cl)
		}
	}

	h.unregister(cl)
	cl.close()
	h.log.Debug().Str("conn", cl.id.String()).Msg("client disconnected")
}

// register associates a connection with a user id, replacing any previous
// connection registered under that id.
func (h *Hub) register(userID int, cl *client) {
	h.mu.Lock()
	h.clients[userID] = cl
	h.mu.Unlock()
	h.log.Debug().Int("userId", userID).Str("conn", cl.id.String()).Msg("client authenticated")
}

// unregister removes one registration of the connection. A connection that
// authenticated under several user ids leaves its other entries behind until
// those ids re-authenticate; broadcasts to such an entry fail the non-blocking
// send and are dropped. This is a linear scan over connected users; a reverse
// index is not worth it at this scale.
func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, registered := range h.clients {
		if registered == cl {
			delete(h.clients, userID)
			break
		}
	}
}

// Broadcast serializes the event once and sends it to every registered
// connection except the one (if any) belonging to excludeUserID. Pass 0 to
// exclude nobody. A slow or closed connection is skipped, never waited on.
func (h *Hub) Broadcast(event Event, excludeUserID int) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to marshal broadcast event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for userID, cl := range h.clients {
		if userID == excludeUserID {
			continue
		}
		if !cl.trySend(data) {
			h.log.Warn().Int("userId", userID).Str("conn", cl.id.String()).Msg("dropping event for slow client")
		}
	}
}

// ClientCount returns the number of registered (authenticated) connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every registered client. Used during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, cl := range h.clients {
		cl.close()
		delete(h.clients, userID)
	}
}
