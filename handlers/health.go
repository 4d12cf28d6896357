package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is an unauthenticated liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
