package middleware

import (
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// AuthRequired checks the static shared secret in the X-API-KEY header
// against the API_KEY environment variable. There is no per-user identity;
// user_id is carried in the request payloads.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No API key provided"})
			return
		}
		expected := os.Getenv("API_KEY")
		if expected == "" || apiKey != expected {
			log.Warnf("Rejected request with invalid API key from %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API key"})
			return
		}
		c.Next()
	}
}
