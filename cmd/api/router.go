package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsDelivery "linkreach-backend/internal/analytics/delivery"
	authDelivery "linkreach-backend/internal/auth/delivery"
	automationDelivery "linkreach-backend/internal/automation/delivery"
	campaignDelivery "linkreach-backend/internal/campaign/delivery"
	messageDelivery "linkreach-backend/internal/message/delivery"
	prospectDelivery "linkreach-backend/internal/prospect/delivery"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)
	campaignHandler := campaignDelivery.NewCampaignHandler(h.campaignUsecase)
	prospectHandler := prospectDelivery.NewProspectHandler(h.prospectUsecase)
	messageHandler := messageDelivery.NewMessageHandler(h.messageUsecase)
	automationHandler := automationDelivery.NewAutomationHandler(h.automationUsecase)
	analyticsHandler := analyticsDelivery.NewAnalyticsHandler(h.analyticsUsecase)

	authRequired := authDelivery.AuthMiddleware(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// SSE endpoint
		api.GET("/events", authRequired, func(c *gin.Context) {
			userID := c.GetString("userID")
			h.sseManager.ServeHTTP(c, userID)
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authRequired, authHandler.Me)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(authRequired)
		{
			fcm.POST("/register", authHandler.RegisterFCMToken)
			fcm.DELETE("/:token", authHandler.UnregisterFCMToken)
		}

		// Campaign routes (protected)
		campaigns := api.Group("/campaigns")
		campaigns.Use(authRequired)
		{
			campaigns.GET("", campaignHandler.List)
			campaigns.POST("", campaignHandler.Create)
			campaigns.GET("/:id", campaignHandler.GetByID)
			campaigns.PUT("/:id", campaignHandler.Update)
			campaigns.DELETE("/:id", campaignHandler.Delete)
		}

		// Prospect routes (protected)
		prospects := api.Group("/prospects")
		prospects.Use(authRequired)
		{
			prospects.GET("", prospectHandler.List)
			prospects.POST("", prospectHandler.Create)
			prospects.POST("/bulk", prospectHandler.BulkCreate)
			prospects.GET("/search", prospectHandler.Search)
			prospects.GET("/:id", prospectHandler.GetByID)
			prospects.PUT("/:id", prospectHandler.Update)
			prospects.PATCH("/:id/status", prospectHandler.UpdateStatus)
			prospects.DELETE("/:id", prospectHandler.Delete)
		}

		// Message routes (protected)
		messages := api.Group("/messages")
		messages.Use(authRequired)
		{
			messages.GET("", messageHandler.List)
			messages.POST("", messageHandler.Send)
			messages.GET("/conversations", messageHandler.Conversations)
			messages.PATCH("/:id/read", messageHandler.MarkRead)
			messages.POST("/draft", messageHandler.Draft)
		}

		// Automation routes (protected)
		automation := api.Group("/automation")
		automation.Use(authRequired)
		{
			automation.GET("/status", automationHandler.Status)
			automation.GET("/settings", automationHandler.GetSettings)
			automation.PUT("/settings", automationHandler.UpdateSettings)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(authRequired)
		{
			analytics.GET("/summary", analyticsHandler.Summary)
			analytics.GET("/trends", analyticsHandler.Trends)
			analytics.GET("/campaigns", analyticsHandler.Campaigns)
		}

		// Admin routes (admin role required)
		admin := api.Group("/admin")
		admin.Use(authRequired, authDelivery.AdminMiddleware())
		{
			admin.GET("/analytics", analyticsHandler.Platform)
			admin.GET("/settings/ollama", h.aiSettingsHandler.GetOllamaSettings)
			admin.PUT("/settings/ollama", h.aiSettingsHandler.UpdateOllamaSettings)
			admin.POST("/settings/ollama/test", h.aiSettingsHandler.TestOllamaConnection)
		}
	}
}
