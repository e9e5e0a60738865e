package server

import "github.com/gin-gonic/gin"

func writeJSON(c *gin.Context, status int, payload any) {
	c.AbortWithStatusJSON(status, payload)
}

func writeError(c *gin.Context, status int, message string) {
	writeJSON(c, status, gin.H{
		"error": message,
	})
}
