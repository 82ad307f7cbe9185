package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"AgriMind_FarmAssistant/internal/auth"
	"AgriMind_FarmAssistant/internal/models"
	"AgriMind_FarmAssistant/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *auth.TokenManager, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenManager("secret", time.Hour)
	require.NoError(t, err)
	sessions := session.NewStore(0)

	r := gin.New()
	r.GET("/gate", SessionMiddleware(tokens, sessions), RequireVerified(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentSession(c).ID)
	})
	r.GET("/menu", SessionMiddleware(tokens, sessions), RequireVerified(), RequireLogin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, tokens, sessions
}

func get(r *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware(t *testing.T) {
	r, tokens, sessions := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/gate", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/gate", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/gate", "Bearer not-a-jwt").Code)

	s := sessions.Create()
	token, err := tokens.GenerateToken(s.ID)
	require.NoError(t, err)

	// 세션은 있지만 카드 인증 전
	w := get(r, "/gate", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_card")

	s.MarkVerified()
	w = get(r, "/gate", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, s.ID, w.Body.String())

	w = get(r, "/gate?token="+token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	sessions.Delete(s.ID)
	w = get(r, "/gate", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session_required")
}

func TestRequireLogin(t *testing.T) {
	r, tokens, sessions := newRouter(t)
	s := sessions.Create()
	s.MarkVerified()
	token, err := tokens.GenerateToken(s.ID)
	require.NoError(t, err)

	w := get(r, "/menu", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login_required")

	s.Login(models.Account{Username: "ramesh", Role: models.RoleBuyer})
	assert.Equal(t, http.StatusOK, get(r, "/menu", "Bearer "+token).Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", RateLimit(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "/limited", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/limited", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/limited", "").Code)
}
