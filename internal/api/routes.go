package api

import (
	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/internal/api/handlers"
	"github.com/chidupudi/ai-assistant/internal/api/middleware"
	"github.com/chidupudi/ai-assistant/internal/config"
)

// SetupRoutes configures all gallery application routes
func SetupRoutes(router *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		setupPublicRoutes(v1, h, cfg)

		// Studio routes
		studio := v1.Group("/")
		studio.Use(middleware.JWTAuth(cfg))
		setupStudioRoutes(studio, h)

		// Client routes (project-scoped token from the PIN gate)
		client := v1.Group("/gallery")
		client.Use(middleware.ClientAuth(cfg))
		setupClientRoutes(client, h)
	}
}

// setupPublicRoutes configures routes that don't require authentication
func setupPublicRoutes(rg *gin.RouterGroup, h *handlers.Handler, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", handlers.Register(cfg))
		auth.POST("/login", handlers.Login(cfg))
	}

	// The PIN gate is the client's only way in
	rg.POST("/access/pin", h.AccessByPin)

	// Serve photo files (local storage provider)
	media := rg.Group("/media")
	{
		media.GET("/:filename", h.ServePhoto)
	}
}

// setupStudioRoutes configures the photographer-facing routes
func setupStudioRoutes(rg *gin.RouterGroup, h *handlers.Handler) {
	projects := rg.Group("/projects")
	{
		projects.POST("/", h.CreateProject)
		projects.GET("/", h.ListProjects)
		projects.GET("/:id", h.GetProject)
		projects.POST("/:id/folders", h.AddFolder)
		projects.GET("/:id/summary", h.ProjectSummary)
		projects.POST("/:id/folders/:folderId/photos", h.UploadPhotos)

		projects.GET("/:id/export/manifest", h.ExportManifest)
		projects.GET("/:id/export/csv", h.ExportCSV)
		projects.GET("/:id/export/json", h.ExportJSON)

		projects.GET("/:id/watch", h.WatchProject)
	}
}

// setupClientRoutes configures the PIN-granted client routes
func setupClientRoutes(rg *gin.RouterGroup, h *handlers.Handler) {
	rg.GET("/", h.GetGallery)
	rg.POST("/photos/:photoId/select", h.ToggleSelection)
	rg.POST("/photos/:photoId/flag", h.ToggleFlag)
}
