package http

import (
	"github.com/gin-gonic/gin"

	"github.com/lettora/lettora-backend/internal/delivery/http/handler"
	"github.com/lettora/lettora-backend/internal/delivery/http/middleware"
)

type Router struct {
	matchHandler      *handler.MatchHandler
	preferenceHandler *handler.PreferenceHandler
	propertyHandler   *handler.PropertyHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	matchHandler *handler.MatchHandler,
	preferenceHandler *handler.PreferenceHandler,
	propertyHandler *handler.PropertyHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		matchHandler:      matchHandler,
		preferenceHandler: preferenceHandler,
		propertyHandler:   propertyHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Preference routes (investor)
			preferences := protected.Group("/preferences")
			preferences.Use(r.authMiddleware.RequireRole(middleware.RoleInvestor, middleware.RoleAdmin))
			{
				preferences.GET("/me", r.preferenceHandler.GetMyPreferences)
				preferences.PUT("/me", r.preferenceHandler.UpsertMyPreferences)
			}

			// Matching routes
			matches := protected.Group("/matches")
			matches.Use(r.authMiddleware.RequireRole(middleware.RoleInvestor, middleware.RoleAdmin))
			{
				matches.GET("/properties", r.matchHandler.GetMatchedProperties)
			}

			// Property routes
			properties := protected.Group("/properties")
			{
				properties.GET("", r.propertyHandler.ListProperties)
				properties.GET("/:id", r.propertyHandler.GetProperty)
				properties.POST("",
					r.authMiddleware.RequireRole(middleware.RoleLandlord, middleware.RoleAdmin),
					r.propertyHandler.CreateProperty)
				properties.PATCH("/:id/status",
					r.authMiddleware.RequireRole(middleware.RoleLandlord, middleware.RoleAdmin),
					r.propertyHandler.UpdatePropertyStatus)
				properties.GET("/:id/matched-investors",
					r.authMiddleware.RequireRole(middleware.RoleLandlord, middleware.RoleAdmin),
					r.matchHandler.GetMatchedInvestors)
			}
		}
	}

	return router
}
