package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/database/migrations"
	"github.com/chidupudi/ai-assistant/internal/assistant"
	"github.com/chidupudi/ai-assistant/internal/config"
	"github.com/chidupudi/ai-assistant/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize Database
	if err := database.Initialize(cfg); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	if err := migrations.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Router
	router := gin.Default()

	h := assistant.NewHandler(database.GetDB(), cfg)
	assistant.SetupRoutes(router, h, cfg)

	// Start Server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
