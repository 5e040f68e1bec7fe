package comments

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

// Handler serves comment CRUD. Like posts, but a comment references a post:
// creation checks the post exists, and listing can filter by postId.
type Handler struct {
	comments *crud.Service[domain.Comment]
	posts    *crud.Service[domain.Post]
}

func NewHandler(comments *crud.Service[domain.Comment], posts *crud.Service[domain.Post]) *Handler {
	return &Handler{comments: comments, posts: posts}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	g := v1.Group("/comments")
	{
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.GET("/post/:id", h.ListByPost)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/comments")
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
	if postID := c.Query("postId"); postID != "" {
		id, err := strconv.ParseInt(postID, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "invalid postId filter")
			return
		}
		filters["post_id"] = id
	}

	items, err := h.comments.List(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListByPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	items, err := h.comments.List(c.Request.Context(), map[string]any{"post_id": id})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.comments.GetByID(c.Request.Context(), id)
	if err != nil {
		writeCrudError(c, err, "comment")
		return
	}

	response.Success(c, http.StatusOK, comment)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "message and postId are required")
		return
	}

	exists, err := h.posts.Exists(c.Request.Context(), req.PostID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "storage failure")
		return
	}
	if !exists {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_POST", "post not found")
		return
	}

	comment := &domain.Comment{
		Message: req.Message,
		PostID:  req.PostID,
		Owner:   middleware.UserID(c),
	}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "failed to create comment")
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}

	updated, err := h.comments.Update(c.Request.Context(), id, &domain.Comment{Message: req.Message})
	if err != nil {
		writeCrudError(c, err, "comment")
		return
	}

	response.Success(c, http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		writeCrudError(c, err, "comment")
		return
	}

	response.Message(c, http.StatusOK, "comment deleted")
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
