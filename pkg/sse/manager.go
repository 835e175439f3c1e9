package sse

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gin-gonic/gin"
)

// client is one open event stream for a user. A user may hold several
// streams at once (multiple tabs).
type client struct {
	userID string
	send   chan []byte
}

type Manager struct {
	mu         sync.RWMutex
	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
}

// Run owns the client set. Call it once in a goroutine.
func (m *Manager) Run() {
	for {
		select {
		case c := <-m.register:
			m.mu.Lock()
			m.clients[c] = struct{}{}
			m.mu.Unlock()
			log.Printf("[SSE] client connected for user %s", c.userID)
		case c := <-m.unregister:
			m.mu.Lock()
			if _, ok := m.clients[c]; ok {
				delete(m.clients, c)
				close(c.send)
			}
			m.mu.Unlock()
			log.Printf("[SSE] client disconnected for user %s", c.userID)
		}
	}
}

// SendToUser delivers an event to every open stream the user holds. Streams
// with a full buffer are skipped rather than blocked on.
func (m *Manager) SendToUser(userID, eventType string, payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[SSE] failed to marshal %s event: %v", eventType, err)
		return
	}
	frame := []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", eventType, data))

	m.mu.RLock()
	defer m.mu.RUnlock()
	for c := range m.clients {
		if c.userID != userID {
			continue
		}
		select {
		case c.send <- frame:
		default:
		}
	}
}

// ServeHTTP upgrades the request to an event stream and blocks until the
// client goes away.
func (m *Manager) ServeHTTP(c *gin.Context, userID string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	cl := &client{userID: userID, send: make(chan []byte, 16)}
	m.register <- cl
	defer func() { m.unregister <- cl }()

	// Initial comment so proxies flush the response headers right away.
	fmt.Fprint(c.Writer, ": connected\n\n")
	c.Writer.Flush()

	for {
		select {
		case frame, ok := <-cl.send:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(frame); err != nil {
				return
			}
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
