package ai

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockEnhancer struct {
	mock.Mock
}

func (m *mockEnhancer) Enhance(ctx context.Context, caption string) (string, error) {
	args := m.Called(ctx, caption)
	return args.String(0), args.Error(1)
}

func aiRouter(enhancer CaptionEnhancer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(enhancer).RegisterProtectedRoutes(router.Group("/"))
	return router
}

func TestEnhanceCaption_Success(t *testing.T) {
	enhancer := new(mockEnhancer)
	enhancer.On("Enhance", mock.Anything, "my cat").Return("my majestic cat at golden hour", nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ai/enhance-caption", bytes.NewBufferString(`{"caption":"my cat"}`))
	req.Header.Set("Content-Type", "application/json")
	aiRouter(enhancer).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "my majestic cat at golden hour")
}

func TestEnhanceCaption_MissingCaption(t *testing.T) {
	enhancer := new(mockEnhancer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ai/enhance-caption", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	aiRouter(enhancer).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Caption is required")
	enhancer.AssertNotCalled(t, "Enhance", mock.Anything, mock.Anything)
}

func TestEnhanceCaption_ProviderError(t *testing.T) {
	enhancer := new(mockEnhancer)
	enhancer.On("Enhance", mock.Anything, "x").Return("", ErrEmptyResult)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/ai/enhance-caption", bytes.NewBufferString(`{"caption":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	aiRouter(enhancer).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
