package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestClient(t *testing.T, m *Manager, projectID string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		m.RegisterClient(&Client{ProjectID: projectID, Conn: conn})
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return len(m.clients[projectID]) == 1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func TestBroadcastReachesProjectSubscribers(t *testing.T) {
	m := NewManager()
	conn := dialTestClient(t, m, "p1")

	m.NotifySelectionChanged("p1", "f1", "ph1", true, 3, 1)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, SelectionChanged, ev.Type)
	assert.Equal(t, "ph1", ev.PhotoID)
	require.NotNil(t, ev.Selected)
	assert.True(t, *ev.Selected)
	assert.Equal(t, 3, ev.TotalSelected)
}

func TestBroadcastSkipsOtherProjects(t *testing.T) {
	m := NewManager()
	conn := dialTestClient(t, m, "p1")

	m.NotifyPhotosImported("p2", "f1", 4)
	m.NotifyPhotosImported("p1", "f2", 2)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, PhotosImported, ev.Type)
	assert.Equal(t, "p1", ev.ProjectID)
	assert.Equal(t, 2, ev.Count)
}

func TestBroadcastFromConcurrentHandlers(t *testing.T) {
	m := NewManager()
	conn := dialTestClient(t, m, "p1")

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.NotifySelectionChanged("p1", "f1", "ph1", true, 1, 0)
		}()
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		conn.SetReadDeadline(time.Now().Add(time.Second))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, SelectionChanged, ev.Type)
	}
}
