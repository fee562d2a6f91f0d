package assistant

import (
	"github.com/gin-gonic/gin"

	"github.com/chidupudi/ai-assistant/internal/api/handlers"
	"github.com/chidupudi/ai-assistant/internal/api/middleware"
	"github.com/chidupudi/ai-assistant/internal/config"
)

// SetupRoutes configures the work-assistant application routes
func SetupRoutes(router *gin.Engine, h *Handler, cfg *config.Config) {
	// Public routes
	public := router.Group("/")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		public.POST("/auth/register", handlers.Register(cfg))
		public.POST("/auth/login", handlers.Login(cfg))
	}

	// API routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth(cfg))

	// Chat routes
	chat := api.Group("/chat")
	{
		chat.POST("", h.Chat)
		chat.GET("/conversations/:id", h.GetConversation)
	}

	// Email routes
	emails := api.Group("/emails")
	{
		emails.GET("", h.ListEmails)
		emails.GET("/urgent", h.UrgentEmails)
		emails.GET("/:id", h.GetEmail)
	}

	// Calendar routes
	calendar := api.Group("/calendar")
	{
		calendar.GET("", h.ListEvents)
		calendar.GET("/today", h.TodayEvents)
	}

	// Task routes
	tasks := api.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.GET("/overdue", h.OverdueTasks)
		tasks.POST("", h.CreateTask)
		tasks.PATCH("/:id", h.UpdateTask)
	}
}
