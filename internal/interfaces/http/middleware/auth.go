// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velvet-vogue/storefront-backend/internal/config"
	"github.com/velvet-vogue/storefront-backend/internal/pkg/auth"
)

// AdminAuth creates JWT authentication middleware for the admin panel
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if !claims.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Set("admin_username", claims.Username)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// GetAdminUsernameFromContext extracts the admin username from gin context
func GetAdminUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get("admin_username")
	if !exists {
		return "", false
	}
	return username.(string), true
}
