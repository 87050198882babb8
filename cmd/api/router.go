package api

import (
	"net/http"

	advisorDelivery "wanderlist-backend/internal/advisor/delivery"
	"wanderlist-backend/internal/auth/delivery"
	bucketDelivery "wanderlist-backend/internal/bucket/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := delivery.NewAuthHandler(h.authUsecase)
	bucketHandler := bucketDelivery.NewBucketHandler(h.bucketUsecase)
	advisorHandler := advisorDelivery.NewAdvisorHandler(h.advisorUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// User routes
		users := api.Group("/users")
		{
			users.POST("/register", authHandler.Register)
			users.POST("/login", authHandler.Login)
			users.GET("/profile", delivery.AuthMiddleware(h.authUsecase), authHandler.Profile)
		}

		// Bucket-list routes (protected)
		bucket := api.Group("/bucket")
		bucket.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			bucket.POST("", bucketHandler.CreateItem)
			bucket.GET("/me", bucketHandler.GetMyItems)
			bucket.GET("/item/:id", bucketHandler.GetItem)
			bucket.PUT("/item/:id", bucketHandler.UpdateItem)
			bucket.PUT("/item/:id/complete", bucketHandler.ToggleCompletion)
			bucket.DELETE("/item/:id", bucketHandler.DeleteItem)
		}

		// AI advisory routes (public, matching the client)
		ai := api.Group("/ai")
		{
			ai.POST("/itinerary", advisorHandler.GetItinerary)
			ai.POST("/best-time", advisorHandler.GetBestTime)
			ai.POST("/nearby", advisorHandler.GetNearby)
		}
	}
}
