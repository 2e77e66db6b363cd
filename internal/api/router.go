package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/saieswarnookala/project-X/internal/api/handlers"
	"github.com/saieswarnookala/project-X/internal/api/middleware"
	"github.com/saieswarnookala/project-X/internal/config"
	"github.com/saieswarnookala/project-X/internal/hub"
	"github.com/saieswarnookala/project-X/internal/services"
	"github.com/saieswarnookala/project-X/internal/store"
)

// SetupRouter configures and returns the Gin engine. The store and hub are
// constructed once in main and injected; handlers never reach for globals.
func SetupRouter(cfg *config.Config, log zerolog.Logger, st *store.MemStore, h *hub.Hub) *gin.Engine {
	authService := services.NewAuthService(st, cfg.BcryptCost)
	dashboardService := services.NewDashboardService(st)

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Apply global middleware first (order matters)
	rateLimiter := middleware.NewRateLimiterMiddleware(cfg, log)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(rateLimiter.Limit())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(st)
	propertyHandler := handlers.NewPropertyHandler(st)
	transactionHandler := handlers.NewTransactionHandler(st, h)
	taskHandler := handlers.NewTaskHandler(st, h)
	documentHandler := handlers.NewDocumentHandler(st, h)
	messageHandler := handlers.NewMessageHandler(st, h)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Realtime channel; clients authenticate in-band after the upgrade.
	r.GET("/ws", h.HandleWS)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		apiGroup.POST("/auth/login", authHandler.Login)
		apiGroup.POST("/auth/register", authHandler.Register)

		apiGroup.GET("/users", userHandler.List)
		apiGroup.GET("/users/:id", userHandler.GetByID)
		apiGroup.GET("/users/role/:role", userHandler.ByRole)

		apiGroup.GET("/properties", propertyHandler.List)
		apiGroup.POST("/properties", propertyHandler.Create)
		apiGroup.GET("/properties/:id", propertyHandler.GetByID)

		apiGroup.GET("/transactions", transactionHandler.List)
		apiGroup.POST("/transactions", transactionHandler.Create)
		apiGroup.GET("/transactions/:id", transactionHandler.GetByID)
		apiGroup.PATCH("/transactions/:id", transactionHandler.Update)
		apiGroup.GET("/transactions/user/:userId", transactionHandler.ByUser)
		apiGroup.GET("/transactions/status/:status", transactionHandler.ByStatus)

		apiGroup.GET("/tasks", taskHandler.List)
		apiGroup.POST("/tasks", taskHandler.Create)
		apiGroup.GET("/tasks/:id", taskHandler.GetByID)
		apiGroup.PATCH("/tasks/:id", taskHandler.Update)
		apiGroup.GET("/tasks/transaction/:transactionId", taskHandler.ByTransaction)
		apiGroup.GET("/tasks/user/:userId", taskHandler.ByUser)
		apiGroup.GET("/tasks/status/:status", taskHandler.ByStatus)

		apiGroup.GET("/documents", documentHandler.List)
		apiGroup.POST("/documents", documentHandler.Create)
		apiGroup.GET("/documents/:id", documentHandler.GetByID)
		apiGroup.PATCH("/documents/:id", documentHandler.Update)
		apiGroup.GET("/documents/transaction/:transactionId", documentHandler.ByTransaction)
		apiGroup.GET("/documents/user/:userId", documentHandler.ByUser)

		apiGroup.GET("/messages", messageHandler.List)
		apiGroup.POST("/messages", messageHandler.Create)
		apiGroup.GET("/messages/:id", messageHandler.GetByID)
		apiGroup.GET("/messages/transaction/:transactionId", messageHandler.ByTransaction)
		apiGroup.GET("/messages/user/:userId", messageHandler.ByUser)
		apiGroup.POST("/messages/:id/read", messageHandler.MarkRead)
		apiGroup.GET("/messages/:id/recipients", messageHandler.Recipients)

		apiGroup.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	return r
}
