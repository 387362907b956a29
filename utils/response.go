package utils

import "github.com/gin-gonic/gin"

func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// RespondWithNotice writes a titled, user-facing notice.
func RespondWithNotice(c *gin.Context, status int, title, description string) {
	c.AbortWithStatusJSON(status, gin.H{"title": title, "error": description})
}
