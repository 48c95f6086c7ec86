package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Аутентификация - публичные маршруты
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}

	// Маршруты опасностей требуют bearer-токен
	hazards := api.Group("/hazards")
	hazards.Use(AuthMiddleware(h.authService, h.logger))
	{
		hazards.POST("", h.reportHazard)
		hazards.GET("/nearby", h.nearbyHazards)
		hazards.GET("/:id", h.getHazard)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
