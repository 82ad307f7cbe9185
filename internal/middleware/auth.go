package middleware

import (
	"errors"
	"net/http"
	"strings"

	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const sessionKey = "session"

// SessionMiddleware resolves the bearer token (header, or ?token= for websocket clients)
// to a live session and stores it in the gin context.
func SessionMiddleware(tokens *auth.TokenManager, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required", "kind": "session_required"})
			return
		}

		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired", "kind": "session_required"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "kind": "session_required"})
			return
		}

		s, err := sessions.Get(claims.SessionID)
		if err != nil {
			// 로그아웃 했거나 만료된 세션, Kisan 카드 인증부터 다시
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session ended, verify your Kisan card again", "kind": "session_required"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if q := c.Query("token"); q != "" {
			return q, true
		}
		return "", false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// CurrentSession returns the session set by SessionMiddleware.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
