package ws

import (
	"encoding/json"
	"sync"
	"time"

	"kittens_server/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second
)

// Client is one authenticated websocket connection. A client belongs to at
// most one room; create_room/join_room are the only messages handled before
// a room is assigned.
type Client struct {
	ID   string
	Name string
	Conn *websocket.Conn
	Send chan []byte

	Hub  *Hub
	Done chan struct{}

	mu   sync.RWMutex
	room *Room
}

func NewClient(id, name string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		ID:   id,
		Name: name,
		Conn: conn,
		Send: make(chan []byte, 256),
		Hub:  hub,
		Done: make(chan struct{}),
	}
}

// Run starts the read/write pumps and blocks until the connection drops.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
	<-c.Done
}

// Room returns the client's current room, or nil before create/join.
func (c *Client) Room() *Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.room
}

func (c *Client) setRoom(r *Room) {
	c.mu.Lock()
	c.room = r
	c.mu.Unlock()
}

// sendMsg queues an outbound message. Never blocks: a client that cannot
// drain its buffer loses messages rather than stalling the session.
func (c *Client) sendMsg(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error("client send marshal failed", "error", err, "type", msg.Type)
		return
	}
	select {
	case c.Send <- data:
	default:
		logger.Warn("client send buffer full, dropping", "client", c.ID, "type", msg.Type)
	}
}

func (c *Client) readPump() {
	defer func() {
		c.disconnect()
		close(c.Done)
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			logger.Debug("client read closed", "client", c.ID, "error", err)
			return
		}
		c.handleMessage(raw)
	}
}

// handleMessage routes an inbound frame. Malformed frames are dropped
// silently, room-less game commands answer with an error.
func (c *Client) handleMessage(raw []byte) {
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		logger.Debug("dropping malformed message", "client", c.ID, "error", err)
		return
	}
	MessagesReceived.WithLabelValues(msg.Type).Inc()

	switch msg.Type {
	case MsgCreateRoom:
		c.Hub.CreateRoom(c)
	case MsgJoinRoom:
		var p JoinRoomPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return
		}
		c.Hub.JoinRoom(c, p.Code)
	default:
		room := c.Room()
		if room == nil {
			c.sendMsg(Message{Type: MsgError, Payload: ErrorPayload{Message: "join a room first"}})
			return
		}
		room.HandleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("client write failed", "client", c.ID, "error", err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) disconnect() {
	if room := c.Room(); room != nil {
		room.handleDisconnect(c)
	}
	_ = c.Conn.Close()
}
