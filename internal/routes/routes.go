package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skilllink_backend/internal/handlers"
	"skilllink_backend/internal/middleware"
)

// RegisterRoutes wires every HTTP route of the API.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, jwtSecret string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMW := middleware.AuthMiddleware(jwtSecret)
	adminMW := middleware.RequireAdmin()

	api := router.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW)
		appHandlers.ServiceHandler.RegisterRoutes(api, authMW)
		appHandlers.AvailabilityHandler.RegisterRoutes(api, authMW)
		appHandlers.RequestHandler.RegisterRoutes(api, authMW)
		appHandlers.RatingHandler.RegisterRoutes(api, authMW)
		appHandlers.ChatHandler.RegisterRoutes(api, authMW)
		appHandlers.MembershipHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.ModerationHandler.RegisterRoutes(api, authMW, adminMW)
		appHandlers.FileHandler.RegisterRoutes(api)
	}
}
