package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// client wraps one websocket connection. All writes go through the send
// channel so a single goroutine owns the connection's write side, which
// gorilla requires.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

func newClient(conn *websocket.Conn, sendBuffer int) *client {
	return &client{
		id:   uuid.New(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

// writePump drains the send channel onto the connection until the channel is
// closed or a write fails.
func (c *client) writePump(writeTimeout time.Duration) {
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			c.close()
			// Drain remaining frames so Broadcast senders never block.
			for range c.send {
			}
			return
		}
	}
	c.conn.Close()
}

// trySend queues a frame without blocking. Returns false when the buffer is
// full or the client is already closed.
func (c *client) trySend(data []byte) (ok bool) {
	defer func() {
		// Send on a closed channel means the client raced a disconnect;
		// treat it as a drop.
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// close shuts the connection down exactly once.
func (c *client) close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}
