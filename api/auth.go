package api

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

const apiSecretHeader = "X-API-Secret"

// authMiddleware enforces the shared-secret header. A server missing its
// secret is a deployment fault, not a client one, so that reports as 500.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	if m.ApiSecret == "" {
		c.AbortWithStatusJSON(500, gin.H{"error": "API secret is not configured"})
		return
	}

	provided := c.GetHeader(apiSecretHeader)
	if subtle.ConstantTimeCompare([]byte(provided), []byte(m.ApiSecret)) != 1 {
		c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	c.Next()
}
