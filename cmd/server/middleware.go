package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// currentUser resolves the acting user for the request. Authentication
// itself happens upstream (gateway or reverse proxy); this service only
// requires that a user identity was established and propagated.
func currentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// mustUserID returns the user established by currentUser.
func mustUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
