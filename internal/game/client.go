package game

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// SendBuffer is the number of outbound frames queued per client before
// further frames are dropped.
const SendBuffer = 256

// Client is one connection attached to a room. Frames queued on Send are
// written by the transport's write pump.
type Client struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan []byte
	JoinedAt time.Time
	closed   bool
}

// NewClient creates a client for conn. conn may be nil in tests.
func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, SendBuffer),
	}
}

// queue hands a frame to the write pump without blocking the room.
func (c *Client) queue(data []byte) bool {
	if c.closed {
		return false
	}
	select {
	case c.Send <- data:
		return true
	default:
		log.Printf("Send buffer full for client %s, dropping frame", c.ID)
		return false
	}
}

// close signals the write pump that no more frames will arrive.
func (c *Client) close() {
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}
