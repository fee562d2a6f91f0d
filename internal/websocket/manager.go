package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// EventType represents the type of gallery notification
type EventType string

const (
	SelectionChanged EventType = "selection_changed"
	FlagChanged      EventType = "flag_changed"
	FolderAdded      EventType = "folder_added"
	PhotosImported   EventType = "photos_imported"
)

// Event is pushed to studio dashboards watching a project while the client
// is making selections.
type Event struct {
	Type          EventType `json:"type"`
	ProjectID     string    `json:"project_id"`
	FolderID      string    `json:"folder_id,omitempty"`
	PhotoID       string    `json:"photo_id,omitempty"`
	Selected      *bool     `json:"selected,omitempty"`
	Flagged       *bool     `json:"flagged,omitempty"`
	TotalSelected int       `json:"total_selected"`
	TotalFlagged  int       `json:"total_flagged"`
	Count         int       `json:"count,omitempty"`
	Message       string    `json:"message,omitempty"`
}

// Client represents a WebSocket subscriber watching one project. writeMu
// serializes writes; the connection allows only one concurrent writer.
type Client struct {
	ProjectID string
	Conn      *websocket.Conn
	writeMu   sync.Mutex
}

func (c *Client) send(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

// Manager handles WebSocket connections and notifications per project
type Manager struct {
	clients    map[string][]*Client
	mu         sync.RWMutex
	register   chan *Client
	unregister chan *Client
}

// NewManager creates a manager and starts its registration loop.
func NewManager() *Manager {
	m := &Manager{
		clients:    make(map[string][]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
	go m.run()
	return m
}

// run starts the WebSocket manager
func (m *Manager) run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			m.clients[client.ProjectID] = append(m.clients[client.ProjectID], client)
			m.mu.Unlock()
		case client := <-m.unregister:
			m.mu.Lock()
			if clients, ok := m.clients[client.ProjectID]; ok {
				for i, c := range clients {
					if c == client {
						m.clients[client.ProjectID] = append(clients[:i], clients[i+1:]...)
						break
					}
				}
				if len(m.clients[client.ProjectID]) == 0 {
					delete(m.clients, client.ProjectID)
				}
			}
			m.mu.Unlock()
		}
	}
}

// RegisterClient registers a new WebSocket subscriber
func (m *Manager) RegisterClient(client *Client) {
	m.register <- client
}

// UnregisterClient unregisters a WebSocket subscriber
func (m *Manager) UnregisterClient(client *Client) {
	m.unregister <- client
}

// Broadcast sends an event to every subscriber of its project.
func (m *Manager) Broadcast(event *Event) error {
	m.mu.RLock()
	clients, ok := m.clients[event.ProjectID]
	m.mu.RUnlock()

	if !ok {
		return nil // No dashboards watching this project
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	for _, client := range clients {
		if err := client.send(data); err != nil {
			// Handle error but continue sending to other clients
			continue
		}
	}

	return nil
}

// NotifySelectionChanged pushes a selection toggle to watching dashboards.
func (m *Manager) NotifySelectionChanged(projectID, folderID, photoID string, selected bool, totalSelected, totalFlagged int) {
	m.Broadcast(&Event{
		Type:          SelectionChanged,
		ProjectID:     projectID,
		FolderID:      folderID,
		PhotoID:       photoID,
		Selected:      &selected,
		TotalSelected: totalSelected,
		TotalFlagged:  totalFlagged,
	})
}

// NotifyFlagChanged pushes a flag toggle to watching dashboards.
func (m *Manager) NotifyFlagChanged(projectID, folderID, photoID string, flagged bool, totalSelected, totalFlagged int) {
	m.Broadcast(&Event{
		Type:          FlagChanged,
		ProjectID:     projectID,
		FolderID:      folderID,
		PhotoID:       photoID,
		Flagged:       &flagged,
		TotalSelected: totalSelected,
		TotalFlagged:  totalFlagged,
	})
}

// NotifyPhotosImported announces a finished import batch.
func (m *Manager) NotifyPhotosImported(projectID, folderID string, count int) {
	m.Broadcast(&Event{
		Type:      PhotosImported,
		ProjectID: projectID,
		FolderID:  folderID,
		Count:     count,
		Message:   "photos imported",
	})
}
