package handlers

import (
	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/chidupudi/ai-assistant/internal/gallery"
	"github.com/chidupudi/ai-assistant/internal/storage"
	"github.com/chidupudi/ai-assistant/internal/websocket"
)

// Handler carries the gallery app's collaborators. The store is constructed
// once at startup and injected here rather than reached through a global.
type Handler struct {
	store    *gallery.Store
	cfg      *config.Config
	storage  storage.Storage
	notifier *websocket.Manager
}

// New creates a handler set over the given collaborators.
func New(store *gallery.Store, cfg *config.Config, blobs storage.Storage, notifier *websocket.Manager) *Handler {
	return &Handler{store: store, cfg: cfg, storage: blobs, notifier: notifier}
}
