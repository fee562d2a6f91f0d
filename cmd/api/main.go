package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/database/migrations"
	"github.com/chidupudi/ai-assistant/internal/api"
	"github.com/chidupudi/ai-assistant/internal/api/handlers"
	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/chidupudi/ai-assistant/internal/database"
	"github.com/chidupudi/ai-assistant/internal/gallery"
	"github.com/chidupudi/ai-assistant/internal/storage"
	"github.com/chidupudi/ai-assistant/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize Database (studio accounts)
	if err := database.Initialize(cfg); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := migrations.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize storage provider
	blobs, err := storage.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	// Initialize the selection store
	store := gallery.NewStore()
	if cfg.Gallery.SeedDemoData {
		project := gallery.SeedDemoData(store)
		log.Printf("Seeded demo project %q with PIN %s", project.Name, project.PIN)
	}

	// Initialize Router
	router := gin.Default()

	notifier := websocket.NewManager()
	h := handlers.New(store, cfg, blobs, notifier)

	// Initialize Routes
	api.SetupRoutes(router, h, cfg)

	// Start Server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
