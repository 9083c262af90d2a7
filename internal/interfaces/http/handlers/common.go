// internal/interfaces/http/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velvet-vogue/storefront-backend/internal/config"
)

// getOrCreateSessionID gets the session ID from the cookie or creates a
// new one. The cookie lifetime follows the cart TTL.
func getOrCreateSessionID(c *gin.Context, cfg *config.Config) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie("session_id", sessionID, int(cfg.Store.CartTTL.Seconds()), "/", "", false, true)
	}

	return sessionID
}
