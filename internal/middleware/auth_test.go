package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"postboard/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(jwtSvc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWTAuth(jwtSvc))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	return router
}

func TestJWTAuth_ValidToken(t *testing.T) {
	jwtSvc := jwt.New("test-secret-123", time.Hour, 7*24*time.Hour)
	pair, err := jwtSvc.GeneratePair(42)
	require.NoError(t, err)

	router := protectedRouter(jwtSvc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuth_SchemeIsIgnored(t *testing.T) {
	jwtSvc := jwt.New("test-secret-123", time.Hour, 7*24*time.Hour)
	pair, err := jwtSvc.GeneratePair(42)
	require.NoError(t, err)

	router := protectedRouter(jwtSvc)

	// historical clients send "jwt <token>" rather than "Bearer <token>"
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "jwt "+pair.AccessToken)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuth_NoHeader(t *testing.T) {
	router := protectedRouter(jwt.New("secret", time.Hour, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestJWTAuth_SchemeWithoutToken(t *testing.T) {
	router := protectedRouter(jwt.New("secret", time.Hour, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := protectedRouter(jwt.New("secret", time.Hour, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestJWTAuth_MissingSecret(t *testing.T) {
	router := protectedRouter(jwt.New("", time.Hour, time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing auth configuration")
}
