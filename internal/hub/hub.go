// Package hub keeps the open WebSocket connections of each user and pushes
// events to them.
package hub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/zlog"
)

const (
	defaultWriteWait = 10 * time.Second
	maxMessageSize   = 512
)

// ErrClosed is returned by Serve once the hub has been closed.
var ErrClosed = errors.New("hub is closed")

// Event is the frame written to clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type connection struct {
	id     string
	userID string
	ws     *websocket.Conn

	writeMu sync.Mutex
}

func (c *connection) write(data []byte, wait time.Duration) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}

	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Hub groups connections by user id.
type Hub struct {
	upgrader  websocket.Upgrader
	writeWait time.Duration

	mu     sync.RWMutex
	groups map[string]map[string]*connection
	closed bool
}

// New creates a Hub. An empty allowedOrigins list accepts any origin.
func New(writeWait time.Duration, allowedOrigins []string) *Hub {
	if writeWait <= 0 {
		writeWait = defaultWriteWait
	}

	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		writeWait: writeWait,
		groups:    make(map[string]map[string]*connection),
	}
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}

		return slices.Contains(allowed, origin) || slices.Contains(allowed, "*")
	}
}

// Serve upgrades the request and adds the connection to userID's group.
// It returns once the connection is registered; reading happens in the background
// and the connection leaves the group when the client disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, userID string) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("upgrade connection: %w", err)
	}

	c := &connection{id: uuid.NewString(), userID: userID, ws: ws}
	if err := h.add(c); err != nil {
		_ = ws.Close()
		return err
	}

	zlog.Logger.Info().Str("user_id", userID).Str("conn_id", c.id).Msg("websocket connected")

	go h.readPump(c)

	return nil
}

// readPump drains client frames so that close and ping control frames are processed.
func (h *Hub) readPump(c *connection) {
	defer func() {
		h.remove(c)
		_ = c.ws.Close()
		zlog.Logger.Info().Str("user_id", c.userID).Str("conn_id", c.id).Msg("websocket disconnected")
	}()

	c.ws.SetReadLimit(maxMessageSize)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zlog.Logger.Warn().Err(err).Str("user_id", c.userID).Msg("websocket read error")
			}
			return
		}
	}
}

// SendToUser writes event to every connection of userID. Connections that
// fail to accept the write are dropped. A user without connections is not an error.
func (h *Hub) SendToUser(ctx context.Context, userID, event string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event, err)
	}

	for _, c := range h.snapshot(userID) {
		if err := c.write(data, h.writeWait); err != nil {
			zlog.Logger.Warn().Err(err).Str("user_id", userID).Str("conn_id", c.id).Msg("failed to write to websocket, dropping")
			h.remove(c)
			_ = c.ws.Close()
		}
	}

	return nil
}

// Connections returns the number of open connections for userID.
func (h *Hub) Connections(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.groups[userID])
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	groups := h.groups
	h.groups = make(map[string]map[string]*connection)
	h.closed = true
	h.mu.Unlock()

	for _, group := range groups {
		for _, c := range group {
			c.writeMu.Lock()
			_ = c.ws.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutdown"),
				time.Now().Add(h.writeWait),
			)
			c.writeMu.Unlock()
			_ = c.ws.Close()
		}
	}
}

func (h *Hub) snapshot(userID string) []*connection {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*connection, 0, len(h.groups[userID]))
	for _, c := range h.groups[userID] {
		conns = append(conns, c)
	}

	return conns
}

func (h *Hub) add(c *connection) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	if h.groups[c.userID] == nil {
		h.groups[c.userID] = make(map[string]*connection)
	}
	h.groups[c.userID][c.id] = c

	return nil
}

func (h *Hub) remove(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	group, ok := h.groups[c.userID]
	if !ok {
		return
	}

	delete(group, c.id)
	if len(group) == 0 {
		delete(h.groups, c.userID)
	}
}
