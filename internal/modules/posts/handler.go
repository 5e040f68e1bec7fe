package posts

import (
	"errors"
	"net/http"
	"strconv"

	"postboard/internal/domain"
	"postboard/internal/middleware"
	"postboard/internal/pkg/crud"
	"postboard/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler serves post CRUD. Reads are public; writes sit behind the JWT gate
// and stamp the authenticated user as owner.
type Handler struct {
	posts *crud.Service[domain.Post]
}

func NewHandler(posts *crud.Service[domain.Post]) *Handler {
	return &Handler{posts: posts}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/post")
	{
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/post")
	{
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) List(c *gin.Context) {
	filters := map[string]any{}
	if owner := c.Query("owner"); owner != "" {
		ownerID, err := strconv.ParseInt(owner, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "invalid owner filter")
			return
		}
		filters["owner"] = ownerID
	}

	items, err := h.posts.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "failed to list posts")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.posts.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCrudError(c, err, "post")
		return
	}

	response.Success(c, http.StatusOK, post)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message is required")
		return
	}

	post := &domain.Post{
		Message: req.Message,
		Owner:   middleware.UserID(c),
	}
	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "failed to create post")
		return
	}

	response.Success(c, http.StatusCreated, post)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	updated, err := h.posts.Update(c.Request.Context(), id, &domain.Post{Message: req.Message})
	if err != nil {
		writeCrudError(c, err, "post")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		writeCrudError(c, err, "post")
		return
	}

	response.Message(c, http.StatusOK, "post deleted")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid id")
		return 0, false
	}
	return id, true
}

func writeCrudError(c *gin.Context, err error, resource string) {
	if errors.Is(err, crud.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", resource+" not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "storage failure")
}
