package websocket

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
)

var ErrSlowClient = errors.New("client send buffer is full")

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

func newClient(id string, conn *websocket.Conn) *client {
	return &client{
		id:   id,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// writer - drains the send queue until it's closed, then closes the connection.
func (that *client) writer() {
	defer that.conn.Close()

	for msg := range that.send {
		_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := that.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}

	_ = that.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait),
	)
}

// Hub tracks connected clients and fans messages out to them.
// Messages are queued under the hub lock, so two broadcasts never interleave.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[string]*client),
	}
}

// Broadcast - sends the full game state to every connected client.
func (that *Hub) Broadcast(state *entity.GameState) {
	log := that.logger.With("method", "Broadcast")

	msg, err := EncodeMessage(ActionState, Payload{Game: state})
	if err != nil {
		log.Error("failed to encode game state", "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, c := range that.clients {
		if err = enqueue(c, msg); err != nil {
			log.Warn("failed to queue game state", "connectionID", c.id, "error", err)
		}
	}
}

// Len returns the number of connected clients.
func (that *Hub) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

func (that *Hub) register(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[c.id] = c
}

// unregister - removes the client and closes its queue, which stops its writer.
func (that *Hub) unregister(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	c, ok := that.clients[id]
	if !ok {
		return
	}

	delete(that.clients, id)
	close(c.send)
}

// send - queues a message for a single client.
func (that *Hub) send(c *client, action string, payload Payload) error {
	msg, err := EncodeMessage(action, payload)
	if err != nil {
		return err
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	if _, ok := that.clients[c.id]; !ok {
		return fmt.Errorf("client %s is not connected", c.id)
	}

	return enqueue(c, msg)
}

func enqueue(c *client, msg []byte) error {
	select {
	case c.send <- msg:
		return nil
	default:
		return ErrSlowClient
	}
}
