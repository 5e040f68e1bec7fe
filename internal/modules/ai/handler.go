package ai

import (
	"net/http"

	"postboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	enhancer CaptionEnhancer
}

type EnhanceCaptionRequest struct {
	Caption string `json:"caption"`
}

func NewHandler(enhancer CaptionEnhancer) *Handler {
	return &Handler{enhancer: enhancer}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/ai")
	{
		g.POST("/enhance-caption", h.EnhanceCaption)
	}
}

func (h *Handler) EnhanceCaption(c *gin.Context) {
	var req EnhanceCaptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Caption == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_CAPTION", "Caption is required")
		return
	}

	enhanced, err := h.enhancer.Enhance(c.Request.Context(), req.Caption)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "ENHANCE_FAILED", "failed to enhance caption")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"enhancedCaption": enhanced})
}
