package middleware

import (
	"github.com/gin-gonic/gin"
)

// abortWithError stops the chain and writes the API's uniform error
// envelope: {"error":{"message":msg,"status":status},"message":msg}.
func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": gin.H{
			"message": msg,
			"status":  status,
		},
		"message": msg,
	})
}
