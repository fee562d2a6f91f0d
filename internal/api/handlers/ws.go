package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"

	"github.com/chidupudi/ai-assistant/internal/websocket"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WatchProject upgrades a studio dashboard connection to a WebSocket
// subscribed to one project's selection events.
func (h *Handler) WatchProject(c *gin.Context) {
	projectID := c.Param("id")
	if h.store.Project(projectID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	client := &websocket.Client{ProjectID: projectID, Conn: conn}
	h.notifier.RegisterClient(client)

	// Reader loop exists only to detect disconnect.
	go func() {
		defer func() {
			h.notifier.UnregisterClient(client)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
