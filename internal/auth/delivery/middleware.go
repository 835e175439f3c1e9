package delivery

import (
	"net/http"
	"strings"

	authdomain "linkreach-backend/internal/auth/domain"
	"linkreach-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and attaches the caller to the
// context. Handlers read the tenant id with c.GetString("userID").
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := authUsecase.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}

// AdminMiddleware runs after AuthMiddleware and rejects non-admin callers.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := c.MustGet("user").(*authdomain.User)
		if !ok || !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
