package ws

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"campus-events/pkg/campus"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 4096

	sendQueueSize = 256
)

var (
	ErrClientClosed  = errors.New("client connection is closed")
	ErrSendQueueFull = errors.New("client send queue is full")
)

// Client is one live websocket connection bound to a single user. It is
// created only after the credential has been verified.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	userID uint

	send chan []byte
	done chan struct{}

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
}

func (c *Client) UserID() uint {
	return c.userID
}

// Send queues a payload for the write pump without blocking. A closed
// connection or a full queue is reported as an error; the caller decides
// whether that matters.
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close shuts the connection down exactly once. Safe to call from any
// exit path.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

// ReadPump consumes inbound frames until the connection dies, handing
// well-formed chat payloads to the hub. Deregistration is deferred so it
// runs on every exit path.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Registry().Deregister(c.userID, c)
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws: user %d read error: %v", c.userID, err)
			}
			return
		}

		var frame campus.InboundChatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			// Tolerate client bugs without dropping the session.
			log.Printf("ws: user %d sent malformed frame: %v", c.userID, err)
			continue
		}

		if frame.Content == "" {
			continue
		}

		if _, err := c.hub.SendChat(c.userID, frame.Channel, frame.Content); err != nil {
			if errors.Is(err, ErrEmptyMessage) {
				continue
			}
			// Persistence failure is terminal for the connection.
			log.Printf("ws: user %d send failed: %v", c.userID, err)
			return
		}
	}
}

// WritePump drains the send queue to the peer and keeps the connection
// alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
