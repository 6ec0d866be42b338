package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// connWithMutex wraps a WebSocket connection with its own mutex for thread-safe writes.
type connWithMutex struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// WSConnectionManager tracks preview connections and fans document changes out to them.
type WSConnectionManager struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*connWithMutex
}

// NewWSConnectionManager creates a new WebSocket connection manager.
func NewWSConnectionManager() *WSConnectionManager {
	return &WSConnectionManager{
		connections: make(map[*websocket.Conn]*connWithMutex),
	}
}

// Add adds a connection to the manager.
func (m *WSConnectionManager) Add(conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[conn] = &connWithMutex{conn: conn}
}

// Remove removes a connection from the manager and closes it.
func (m *WSConnectionManager) Remove(conn *websocket.Conn) {
	m.mu.Lock()
	_, ok := m.connections[conn]
	delete(m.connections, conn)
	m.mu.Unlock()

	if ok {
		_ = conn.Close()
	}
}

// Count reports the number of live connections.
func (m *WSConnectionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// Broadcast sends a message to all connected clients. Connections that fail
// to accept the write are dropped.
func (m *WSConnectionManager) Broadcast(message any) {
	m.mu.RLock()
	conns := make([]*connWithMutex, 0, len(m.connections))
	for _, cwm := range m.connections {
		conns = append(conns, cwm)
	}
	m.mu.RUnlock()

	for _, cwm := range conns {
		cwm.mu.Lock()
		err := cwm.conn.WriteJSON(message)
		cwm.mu.Unlock()

		if err != nil {
			m.Remove(cwm.conn)
		}
	}
}

// WriteJSON safely writes JSON to a specific connection using its mutex.
func (m *WSConnectionManager) WriteJSON(conn *websocket.Conn, message any) error {
	m.mu.RLock()
	cwm, exists := m.connections[conn]
	m.mu.RUnlock()

	if !exists {
		return conn.WriteJSON(message)
	}

	cwm.mu.Lock()
	defer cwm.mu.Unlock()
	return cwm.conn.WriteJSON(message)
}

// CloseAll drops every connection.
func (m *WSConnectionManager) CloseAll() {
	m.mu.Lock()
	conns := m.connections
	m.connections = make(map[*websocket.Conn]*connWithMutex)
	m.mu.Unlock()

	for conn, cwm := range conns {
		cwm.mu.Lock()
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		cwm.mu.Unlock()
		_ = conn.Close()
	}
}
