package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireVerified blocks every route behind the Kisan card gate.
func RequireVerified() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil || !s.Verified() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Kisan card not verified", "kind": "invalid_card"})
			return
		}
		c.Next()
	}
}

// RequireLogin must run after RequireVerified.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if s == nil || !s.LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Login required", "kind": "login_required"})
			return
		}
		c.Next()
	}
}
