package v1

import (
	"github.com/gin-gonic/gin"
)

// HealthCheck handles the liveness endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
	})
}
