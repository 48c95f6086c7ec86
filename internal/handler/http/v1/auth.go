package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/safarnexus/hazard_reporting_system/internal/service"
)

const userIDContextKey = "user_id"

// AuthMiddleware - middleware аутентификации по bearer JWT.
// Резолвит личность вызывающего до любой бизнес-логики и кладет
// user_id в контекст запроса.
func AuthMiddleware(authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		userID, err := authService.Verify(parts[1])
		if err != nil {
			log.WithError(err).Warn("Rejected request with invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

// userIDFromContext возвращает user_id, положенный AuthMiddleware
func userIDFromContext(c *gin.Context) uuid.UUID {
	v, exists := c.Get(userIDContextKey)
	if !exists {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
