package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateRouter(tm *auth.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	protected := r.Group("/protected")
	protected.Use(AuthMiddleware(tm))
	{
		protected.GET("/any", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
		})
		protected.GET("/employer", RoleMiddleware(models.UserRoleEmployer), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}
	return r
}

func doRequest(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newGateRouter(tm)

	// Нет заголовка
	w := doRequest(r, "/protected/any", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Заголовок не Bearer
	w = doRequest(r, "/protected/any", "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newGateRouter(tm)

	// Битый токен
	w := doRequest(r, "/protected/any", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Токен, подписанный другим секретом
	other := auth.NewTokenManager("other-secret", time.Hour)
	token, err := other.Generate("user-1", "alice", models.UserRoleSeeker)
	require.NoError(t, err)

	w = doRequest(r, "/protected/any", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Просроченный токен
	expired := auth.NewTokenManager("test-secret", -time.Minute)
	token, err = expired.Generate("user-1", "alice", models.UserRoleSeeker)
	require.NoError(t, err)

	w = doRequest(r, "/protected/any", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newGateRouter(tm)

	token, err := tm.Generate("user-1", "alice", models.UserRoleSeeker)
	require.NoError(t, err)

	w := doRequest(r, "/protected/any", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestRoleMiddleware(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("test-secret", time.Hour)
	r := newGateRouter(tm)

	// Соискатель не проходит в employer-зону
	seekerToken, err := tm.Generate("user-1", "alice", models.UserRoleSeeker)
	require.NoError(t, err)

	w := doRequest(r, "/protected/employer", "Bearer "+seekerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Работодатель проходит
	employerToken, err := tm.Generate("user-2", "bob", models.UserRoleEmployer)
	require.NoError(t, err)

	w = doRequest(r, "/protected/employer", "Bearer "+employerToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
